package domain

// Product is the single persistent entity of the shop. ID 0 marks a product
// that has not been saved yet; the server assigns the real id on create.
type Product struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Price       int64  `db:"price" json:"price"`
	Category    string `db:"category" json:"category"`
	ImageURL    string `db:"image_url" json:"image_url"`
	Description string `db:"description" json:"description"`
	Composition string `db:"composition" json:"composition"`
	IsAvailable bool   `db:"is_available" json:"is_available"`
	CreatedAt   string `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt   string `db:"updated_at" json:"updated_at,omitempty"`
}

func (p Product) IsNew() bool { return p.ID == 0 }

// Categories is the closed category set, in display order.
var Categories = []Category{
	{ID: "mono", Label: "Монобукеты"},
	{ID: "mixed", Label: "Сборные"},
	{ID: "composition", Label: "Композиции"},
	{ID: "toys", Label: "Игрушки"},
	{ID: "sweets", Label: "Конфеты"},
	{ID: "balloons", Label: "Шары"},
}

type Category struct {
	ID    string
	Label string
}

// DefaultDraft is the edit buffer a freshly opened create dialog starts from.
func DefaultDraft() Product {
	return Product{
		ID:          0,
		Name:        "",
		Price:       0,
		Category:    "mono",
		ImageURL:    "",
		Description: "",
		Composition: "",
		IsAvailable: true,
	}
}
