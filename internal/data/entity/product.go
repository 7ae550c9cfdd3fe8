package entity

type Product struct {
	BaseNoDelete
	Name        string  `db:"name"`
	Description *string `db:"description"`
	ImageURL    *string `db:"image_url"`
	Price       float64 `db:"price"`
	Quantity    int     `db:"quantity"`
}
