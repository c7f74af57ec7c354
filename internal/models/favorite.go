package models

// Favorite is a catalog title the user has saved. The creator back-reference
// and the membership row on the owner must always exist together.
type Favorite struct {
	ID         string `json:"id"`
	NFID       string `json:"nfid"`
	Title      string `json:"title"`
	Synopsis   string `json:"synopsis"`
	Year       string `json:"year"`
	IMDBRating string `json:"imdbrating"`
	Image      string `json:"img"`
	CreatorID  string `json:"creator"`
}

type AddFavoriteRequest struct {
	NFID       string `json:"nfid" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Synopsis   string `json:"synopsis" validate:"required"`
	Year       string `json:"year" validate:"required"`
	IMDBRating string `json:"imdbrating" validate:"required"`
	Image      string `json:"img" validate:"required"`
}

type RemovedFavorite struct {
	ID   string `json:"id"`
	NFID string `json:"netflixid"`
}
