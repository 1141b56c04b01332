package mail

import (
	"context"

	"github.com/google/uuid"

	"github.com/scoutclear/scout/internal/logging"
)

// LogSender records messages in the log instead of delivering them.
// Used for local development with MAIL_PROVIDER=log.
type LogSender struct {
	logger *logging.Logger
}

func NewLogSender(logger *logging.Logger) *LogSender {
	if logger == nil {
		logger = logging.Nop()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Name() string {
	return "Log"
}

func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	s.logger.Info("MAIL (log provider) id=%s to=%s html_bytes=%d text_bytes=%d",
		id, msg.To, len(msg.HTML), len(msg.Text))
	return id, nil
}
