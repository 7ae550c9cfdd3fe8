package entity

type Review struct {
	BaseSimple
	Email   string  `db:"email"`
	Name    string  `db:"name"`
	Rating  int     `db:"rating"` // 1-5
	Comment *string `db:"comment"`
}
