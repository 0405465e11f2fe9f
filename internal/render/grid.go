package render

import (
	"tmdb-explorer-service/internal/model"
)

// GridContext carries the navigation state a grid was rendered for
type GridContext struct {
	Kind   string
	Filter string
	Window string
	Query  string
}

// Grid lays out a listing payload as a row-major card grid. At most
// the configured number of cards are produced, in source array order.
// An absent or empty results array renders exactly one placeholder.
func (r *Renderer) Grid(ctx GridContext, payload *model.ListingResponse, isFavorite func(int) bool) model.Grid {
	grid := model.Grid{
		Kind:    ctx.Kind,
		Filter:  ctx.Filter,
		Window:  ctx.Window,
		Query:   ctx.Query,
		Columns: r.limits.GridColumns,
		Cards:   []model.Card{},
	}

	if payload == nil || len(payload.Results) == 0 {
		grid.Placeholder = Placeholder
		return grid
	}

	items := payload.Results
	if len(items) > r.limits.GridCards {
		items = items[:r.limits.GridCards]
	}

	for i, item := range items {
		label := LabelFavorite
		if isFavorite != nil && isFavorite(item.ID) {
			label = LabelUnfavorite
		}

		grid.Cards = append(grid.Cards, model.Card{
			ID:            item.ID,
			Row:           i / r.limits.GridColumns,
			Col:           i % r.limits.GridColumns,
			Title:         item.DisplayTitle(),
			Date:          item.DisplayDate(),
			Rating:        ratingBadge(item.VoteAverage),
			ImageURL:      r.imageURL(sizePoster, item.ImagePath()),
			FavoriteLabel: label,
		})
	}

	return grid
}
