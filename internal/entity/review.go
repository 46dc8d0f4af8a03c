package entity

import "time"

type Review struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	Review    string    `db:"review"`
	ImageURL  string    `db:"image_url"`
	ImageKey  string    `db:"image_key"`
	Approved  bool      `db:"approved"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
