package entity

type SupportMessage struct {
	BaseSimple
	Name    string `db:"name"`
	Email   string `db:"email"`
	Message string `db:"message"`
}
