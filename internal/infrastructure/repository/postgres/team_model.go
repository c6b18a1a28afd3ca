package postgres

import "time"

type teamTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	AgeGroup  string     `db:"age_group"`
	Season    string     `db:"season"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	AgeGroup  string    `db:"age_group"`
	Season    string    `db:"season"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
