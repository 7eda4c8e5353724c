package models

type Trip struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Duration    string `json:"duration"`
	Image       string `json:"image"`
}
