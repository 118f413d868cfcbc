package model

// PlaylistInfo is the metadata needed before a download can start
type PlaylistInfo struct {
	ID    string
	Title string
	Count int
}
