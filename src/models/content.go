package models

import "time"

type Image struct {
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type Post struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body,omitempty"`
	HTML        string    `json:"html,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CoverImage  *Image    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

type Project struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	HTML        string   `json:"html,omitempty"`
	TechStack   []string `json:"techStack,omitempty"`
	RepoURL     string   `json:"repoUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
	Images      []Image  `json:"images,omitempty"`
}

type Page struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	HTML  string `json:"html,omitempty"`
}
