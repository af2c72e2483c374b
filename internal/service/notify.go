package service

import "github.com/set-night/phonechat/internal/domain"

// Notifier forwards notable events to the sales and ops teams.
// Implementations must not block for long and must not fail the caller.
type Notifier interface {
	NotifyLead(user *domain.User, phone *domain.CellPhone, lead domain.ContactInfo)
	NotifyError(err error, context string)
}

type nopNotifier struct{}

func (nopNotifier) NotifyLead(*domain.User, *domain.CellPhone, domain.ContactInfo) {}
func (nopNotifier) NotifyError(error, string)                                    {}
