package rest

import "time"

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Languages struct {
	Default   string     `json:"default"`
	Languages []Language `json:"languages"`
}

type Resolution struct {
	Lang string `json:"lang"`
	Path string `json:"path"`
}

type Translation struct {
	Lang  string `json:"lang"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CollectionSummary struct {
	Name     string `json:"name"`
	Entries  int    `json:"entries"`
	Rejected int    `json:"rejected"`
}

type EntrySummary struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PubDate     time.Time `json:"pubDate"`
	Lang        string    `json:"lang"`
	Image       string    `json:"image,omitempty"`
}

type Entry struct {
	EntrySummary
	Collection string `json:"collection"`
	Path       string `json:"path"`
	Body       string `json:"body"`
}

type EntriesPage struct {
	Items    []EntrySummary `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

type Diagnostic struct {
	Collection string `json:"collection"`
	Document   string `json:"document"`
	Field      string `json:"field"`
	Reason     string `json:"reason"`
	Detail     string `json:"detail,omitempty"`
	Message    string `json:"message"`
}

type ReloadResult struct {
	LoadedAt    time.Time `json:"loadedAt"`
	Collections int       `json:"collections"`
	Rejected    int       `json:"rejected"`
}
