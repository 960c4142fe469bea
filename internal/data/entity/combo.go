package entity

type Combo struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Price       int64   `db:"price"`
}
