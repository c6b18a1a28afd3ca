package postgres

import "time"

type matchTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	TeamID    string     `db:"team_public_id"`
	Opponent  string     `db:"opponent"`
	PlayedAt  time.Time  `db:"played_at"`
	Location  string     `db:"location"`
	Notes     string     `db:"notes"`
	RawStats  string     `db:"raw_stats"`
	Computed  string     `db:"computed_stats"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID  string    `db:"public_id"`
	TeamID    string    `db:"team_public_id"`
	Opponent  string    `db:"opponent"`
	PlayedAt  time.Time `db:"played_at"`
	Location  string    `db:"location"`
	Notes     string    `db:"notes"`
	RawStats  string    `db:"raw_stats"`
	Computed  string    `db:"computed_stats"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
