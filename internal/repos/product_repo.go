package repos

import (
	"blossom/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, price, category, image_url, description, composition,
  is_available, created_at, COALESCE(updated_at,'') AS updated_at`

// ListAvailable returns the storefront catalog, newest first.
func (r *ProductRepo) ListAvailable() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  WHERE is_available = 1
  ORDER BY created_at DESC, id DESC
`)
	return out, err
}

// ListAll returns every product including unavailable ones (admin listing).
func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  ORDER BY created_at DESC, id DESC
`)
	return out, err
}

// ListByCategory filters the storefront catalog by one category.
func (r *ProductRepo) ListByCategory(category string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  WHERE is_available = 1 AND category = ?
  ORDER BY created_at DESC, id DESC
`, category)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT `+productCols+`
  FROM products
  WHERE id = ?
`, id)
	return p, err
}

// Create inserts a product and returns it with the server-assigned id.
func (r *ProductRepo) Create(p domain.Product) (domain.Product, error) {
	res, err := r.db.Exec(`
  INSERT INTO products(name, price, category, image_url, description, composition, is_available)
  VALUES(?,?,?,?,?,?,?)
`, p.Name, p.Price, p.Category, p.ImageURL, p.Description, p.Composition, p.IsAvailable)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(id)
}

// Update rewrites every editable field. Returns sql.ErrNoRows via Get when
// the id does not exist.
func (r *ProductRepo) Update(p domain.Product) (domain.Product, error) {
	if _, err := r.Get(p.ID); err != nil {
		return domain.Product{}, err
	}
	_, err := r.db.Exec(`
  UPDATE products
  SET name = ?, price = ?, category = ?, image_url = ?, description = ?,
      composition = ?, is_available = ?, updated_at = CURRENT_TIMESTAMP
  WHERE id = ?
`, p.Name, p.Price, p.Category, p.ImageURL, p.Description, p.Composition, p.IsAvailable, p.ID)
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(p.ID)
}

func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}
