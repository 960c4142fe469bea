package entity

type Cinema struct {
	Base
	Name    string `db:"name"`
	Slug    string `db:"slug"`
	Address string `db:"address"`
}
