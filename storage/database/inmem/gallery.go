package inmemdb

import "github.com/Sazzad-Saju/circle-funds-flow/core/gallery"

type galleryRepository struct {
	db *galleryTable
}

var _ gallery.Repository = (*galleryRepository)(nil)

func NewGalleryRepository(db *DB) gallery.Repository {
	return &galleryRepository{db: db.gallery}
}

func copyItem(it gallery.Item) gallery.Item {
	it.Likers = cloneStrings(it.Likers)
	return it
}

func (repo *galleryRepository) QueryAll() ([]gallery.Item, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	items := make([]gallery.Item, 0, len(repo.db.rows))
	for _, it := range repo.db.rows {
		items = append(items, copyItem(it))
	}
	return items, nil
}

func (repo *galleryRepository) GetByID(id string) (gallery.Item, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, it := range repo.db.rows {
		if it.ID == id {
			return copyItem(it), nil
		}
	}
	return gallery.Item{}, gallery.ErrNotFound
}

func (repo *galleryRepository) Create(it gallery.Item) (gallery.Item, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	it = copyItem(it)
	rows := make([]gallery.Item, 0, len(repo.db.rows)+1)
	rows = append(rows, it)
	rows = append(rows, repo.db.rows...)
	repo.db.rows = rows
	return copyItem(it), nil
}

func (repo *galleryRepository) Update(it gallery.Item) (gallery.Item, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, row := range repo.db.rows {
		if row.ID != it.ID {
			continue
		}
		it = copyItem(it)
		rows := make([]gallery.Item, len(repo.db.rows))
		copy(rows, repo.db.rows)
		rows[i] = it
		repo.db.rows = rows
		return copyItem(it), nil
	}
	return gallery.Item{}, gallery.ErrNotFound
}
