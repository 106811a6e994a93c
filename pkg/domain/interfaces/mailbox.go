package interfaces

//go:generate moq -out mocks/mailbox_mock.go -pkg mocks . MailboxClient

import (
	"context"

	"github.com/idops-lab/offramp/pkg/domain/types"
)

// MailboxClient is the mail-platform side of the pipeline
type MailboxClient interface {
	// ConvertToShared converts the mailbox to a shared mailbox in place
	ConvertToShared(ctx context.Context, principal types.PrincipalName) error

	// Close releases the session
	Close() error
}
