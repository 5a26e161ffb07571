package consumer

import (
	"context"
	"encoding/json"

	"go-salary/internal/events"
	"go-salary/internal/report"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumeSalaryReportRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	reportService report.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_report")
	log.Info("salary report consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary report consumer stopped")
				return
			}
			log.Error("fetch salary report message failed", zap.Error(err))
			continue
		}

		var event events.SalaryReportRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary report event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = reportService.GenerateFile(ctx, event.ReportID)
		if err != nil {
			log.Error("generate salary report failed",
				zap.Uint("report_id", event.ReportID),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary report message failed", zap.Error(err))
			continue
		}

		log.Info("salary report generated",
			zap.Uint("report_id", event.ReportID),
			zap.String("request_id", event.RequestID),
		)
	}
}
