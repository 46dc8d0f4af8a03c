package entity

import "time"

type Influencer struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	PicURL      string    `db:"pic_url"`
	PicKey      string    `db:"pic_key"`
	Keywords    string    `db:"keywords"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
