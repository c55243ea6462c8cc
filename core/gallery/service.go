package gallery

import (
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

// BlobPathPrefix is the API path under which session blobs are served.
const BlobPathPrefix = "/v1/gallery/blobs/"

var (
	ErrNotFound     = errors.New("gallery item not found")
	ErrBlobNotFound = errors.New("photo not found")

	nowFunc = time.Now // mockable
)

type (
	// Repository stores gallery items newest first.
	Repository interface {
		QueryAll() ([]Item, error)
		GetByID(id string) (Item, error)
		// Create prepends it to the list.
		Create(it Item) (Item, error)
		Update(it Item) (Item, error)
	}

	// BlobStore keeps uploaded photo bytes for the lifetime of the process.
	BlobStore interface {
		Put(data []byte, filename string) (id string, err error)
		Get(id string) (data []byte, contentType string, ok bool)
	}

	// LikeResult is the outcome of a like. Item is nil when the like was a no-op.
	LikeResult struct {
		Liked bool  `json:"liked"`
		Item  *Item `json:"item,omitempty"`
	}

	Service struct {
		repo       Repository
		blobs      BlobStore
		likePolicy string
		mu         sync.Mutex
	}
)

func NewService(repo Repository, blobs BlobStore, likePolicy string) *Service {
	if likePolicy == "" {
		likePolicy = core.PolicyUnlimited
	}
	return &Service{repo: repo, blobs: blobs, likePolicy: likePolicy}
}

func NewServiceFromConfig(repo Repository, blobs BlobStore, conf *core.Config) *Service {
	return NewService(repo, blobs, conf.Policy.GalleryLike)
}

// List returns all items, newest first.
func (svc *Service) List() ([]Item, error) {
	items, err := svc.repo.QueryAll()
	return items, errors.Wrap(err, "querying gallery items")
}

// Like increments the like count of item id. Unknown ids are no-ops, as are repeats under the "once" policy.
func (svc *Service) Like(member, id string) (LikeResult, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	it, err := svc.repo.GetByID(id)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return LikeResult{}, nil
		}
		return LikeResult{}, errors.Wrap(err, "finding gallery item")
	}
	if svc.likePolicy == core.PolicyOnce && it.likedBy(member) {
		return LikeResult{}, nil
	}

	it.Likes++
	if !it.likedBy(member) {
		it.Likers = append(it.Likers, member)
	}
	it, err = svc.repo.Update(it)
	if err != nil {
		return LikeResult{}, errors.Wrap(err, "updating gallery item")
	}
	return LikeResult{Liked: true, Item: &it}, nil
}

// AddPhoto stores the photo bytes in the session blob store and prepends a new item by author.
func (svc *Service) AddPhoto(author string, np NewPhoto) (Item, *core.Notice, error) {
	if mtype := mimetype.Detect(np.File); !strings.HasPrefix(mtype.String(), "image/") {
		return Item{}, nil, core.NewValidationError(ErrNotAnImage, core.FieldError{Field: "file", Error: ErrNotAnImage.Error()})
	}
	blobID, err := svc.blobs.Put(np.File, np.Filename)
	if err != nil {
		return Item{}, nil, errors.Wrap(err, "storing photo")
	}

	it := Item{
		ID:        uuid.New().String(),
		ImageURL:  BlobPathPrefix + blobID,
		Caption:   np.Caption,
		Author:    author,
		Timestamp: "just now",
		CreatedAt: nowFunc().UTC(),
	}
	it, err = svc.repo.Create(it)
	if err != nil {
		return Item{}, nil, errors.Wrap(err, "creating gallery item")
	}
	return it, core.NewNotice("Photo Added!", "Your photo has been shared with the circle"), nil
}

// Photo returns the bytes and content type of a session blob.
func (svc *Service) Photo(blobID string) ([]byte, string, error) {
	data, contentType, ok := svc.blobs.Get(blobID)
	if !ok {
		return nil, "", ErrBlobNotFound
	}
	return data, contentType, nil
}
