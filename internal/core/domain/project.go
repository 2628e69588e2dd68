package domain

import "time"

type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Author      string    `json:"author"`
	Votes       int64     `json:"votes"`
	CreatedAt   time.Time `json:"created_at"`
}

type Stats struct {
	Projects int      `json:"projects"`
	Votes    int64    `json:"votes"`
	Leader   *Project `json:"leader,omitempty"`
}
