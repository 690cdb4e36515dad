package identity

import "github.com/rs/zerolog"

// ResetSender delivers password-reset mail. The remote identity provider
// owns the reset flow end to end; this is only the request seam.
type ResetSender interface {
	SendReset(email string) error
}

var _ ResetSender = (*LogResetSender)(nil)

// LogResetSender records reset requests to the log. The dev server uses it
// in place of a real mail-capable provider.
type LogResetSender struct {
	log zerolog.Logger
}

func NewLogResetSender(log zerolog.Logger) *LogResetSender {
	return &LogResetSender{log: log}
}

func (s *LogResetSender) SendReset(email string) error {
	s.log.Info().Str("email", email).Msg("password reset requested")
	return nil
}
