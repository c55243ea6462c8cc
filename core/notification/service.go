package notification

import "github.com/pkg/errors"

var ErrNotFound = errors.New("notification not found")

type (
	// Repository keeps notifications in seed order.
	Repository interface {
		QueryAll() ([]Notification, error)
		// MarkRead flags id as read. It reports whether anything changed.
		MarkRead(id string) (bool, error)
		// MarkAllRead flags every notification as read in one pass and returns how many changed.
		MarkAllRead() (int, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the notifications in seed order.
func (svc *Service) List() ([]Notification, error) {
	nts, err := svc.repo.QueryAll()
	return nts, errors.Wrap(err, "querying notifications")
}

// Feed returns the notifications along with the unread count.
func (svc *Service) Feed() (Feed, error) {
	nts, err := svc.List()
	if err != nil {
		return Feed{}, err
	}
	return Feed{Notifications: nts, UnreadCount: UnreadCount(nts)}, nil
}

func (svc *Service) UnreadCount() (int, error) {
	nts, err := svc.List()
	if err != nil {
		return 0, err
	}
	return UnreadCount(nts), nil
}

// MarkRead is idempotent. Unknown ids are no-ops.
func (svc *Service) MarkRead(id string) (bool, error) {
	changed, err := svc.repo.MarkRead(id)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return false, nil
		}
		return false, errors.Wrap(err, "marking notification read")
	}
	return changed, nil
}

func (svc *Service) MarkAllRead() (int, error) {
	n, err := svc.repo.MarkAllRead()
	return n, errors.Wrap(err, "marking all notifications read")
}
