package render

import (
	"sort"
	"strings"
	"time"

	"tmdb-explorer-service/internal/model"
)

const reviewCutoff = 200

// MovieDetail renders the detail layout for a movie or TV show
func (r *Renderer) MovieDetail(kind string, payload *model.DetailPayload) model.MovieDetail {
	detail := model.MovieDetail{
		ID:        payload.ID,
		Kind:      kind,
		Title:     displayTitle(payload),
		PosterURL: r.imageURL(sizePoster, posterPath(payload)),
		Overview:  payload.Overview,
		Cast:      r.castLine(payload.Credits),
		Trailer:   trailerLink(payload.Videos),
	}

	if detail.Overview == "" {
		detail.Overview = NotAvailable
	}

	if payload.WatchProviders != nil {
		if us, ok := payload.WatchProviders.Results["US"]; ok {
			providers := us.Flatrate
			if len(providers) > r.limits.Providers {
				providers = providers[:r.limits.Providers]
			}
			for _, p := range providers {
				detail.Providers = append(detail.Providers, model.ProviderView{
					Name:    p.ProviderName,
					LogoURL: r.imageURL(sizeLogo, p.LogoPath),
				})
			}
		}
	}

	if payload.Reviews != nil && len(payload.Reviews.Results) > 0 {
		detail.Review = truncateReview(payload.Reviews.Results[0].Content)
	}

	if payload.Recommendations != nil {
		recs := payload.Recommendations.Results
		if len(recs) > r.limits.Recommendations {
			recs = recs[:r.limits.Recommendations]
		}
		for _, rec := range recs {
			detail.Recommendations = append(detail.Recommendations, model.Recommendation{
				ID:        rec.ID,
				Title:     rec.DisplayTitle(),
				PosterURL: r.imageURL(sizePoster, rec.ImagePath()),
				Rating:    ratingBadge(rec.VoteAverage),
			})
		}
	}

	return detail
}

// PersonDetail renders the detail layout for a person
func (r *Renderer) PersonDetail(payload *model.DetailPayload) model.PersonDetail {
	detail := model.PersonDetail{
		ID:           payload.ID,
		Name:         payload.Name,
		ProfileURL:   r.imageURL(sizePoster, payload.ProfilePath),
		PlaceOfBirth: payload.PlaceOfBirth,
		Biography:    payload.Biography,
	}

	if detail.Biography == "" {
		detail.Biography = NotAvailable
	}

	// The real name is shown only when it differs from the display name
	if len(payload.AlsoKnownAs) > 0 && payload.AlsoKnownAs[0] != payload.Name {
		detail.RealName = payload.AlsoKnownAs[0]
	}

	// A birthday that fails to parse suppresses both the birthday and
	// the age, silently.
	if payload.Birthday != "" {
		if birth, err := time.Parse("2006-01-02", payload.Birthday); err == nil {
			age := ageAt(birth, r.now())
			detail.Birthday = payload.Birthday
			detail.Age = &age
		}
	}

	if payload.CombinedCredits != nil && len(payload.CombinedCredits.Cast) > 0 {
		roles := make([]model.CreditRole, len(payload.CombinedCredits.Cast))
		copy(roles, payload.CombinedCredits.Cast)
		// Stable: ties keep input order
		sort.SliceStable(roles, func(i, j int) bool {
			return roles[i].Popularity > roles[j].Popularity
		})
		if len(roles) > r.limits.Credits {
			roles = roles[:r.limits.Credits]
		}
		for _, role := range roles {
			detail.KnownFor = append(detail.KnownFor, model.RoleView{
				ID:        role.ID,
				Title:     role.DisplayTitle(),
				Character: role.Character,
				PosterURL: r.imageURL(sizePoster, role.PosterPath),
			})
		}
	}

	if payload.Images != nil {
		profiles := payload.Images.Profiles
		if len(profiles) > r.limits.Gallery {
			profiles = profiles[:r.limits.Gallery]
		}
		for _, p := range profiles {
			if u := r.imageURL(sizePoster, p.FilePath); u != "" {
				detail.Gallery = append(detail.Gallery, u)
			}
		}
	}

	return detail
}

func displayTitle(payload *model.DetailPayload) string {
	if payload.Title != "" {
		return payload.Title
	}
	if payload.Name != "" {
		return payload.Name
	}
	return "Unknown"
}

func posterPath(payload *model.DetailPayload) string {
	if payload.PosterPath != "" {
		return payload.PosterPath
	}
	return payload.ProfilePath
}

func (r *Renderer) castLine(credits *model.Credits) string {
	if credits == nil || len(credits.Cast) == 0 {
		return NotAvailable
	}
	cast := credits.Cast
	if len(cast) > r.limits.Cast {
		cast = cast[:r.limits.Cast]
	}
	names := make([]string, len(cast))
	for i, member := range cast {
		names[i] = member.Name
	}
	return strings.Join(names, ", ")
}

// trailerLink picks the first video with type "Trailer" and site
// "YouTube", in upstream order
func trailerLink(videos *model.VideoList) string {
	if videos == nil {
		return NotAvailable
	}
	for _, v := range videos.Results {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return NotAvailable
}

// truncateReview cuts a review to 200 characters and appends an
// ellipsis. The ellipsis is appended unconditionally on this branch,
// matching the reference behavior even for short reviews.
func truncateReview(content string) string {
	runes := []rune(content)
	if len(runes) > reviewCutoff {
		runes = runes[:reviewCutoff]
	}
	return string(runes) + "..."
}

// ageAt computes whole years between a birth date and now
func ageAt(birth, now time.Time) int {
	days := int(now.Sub(birth).Hours() / 24)
	return int(float64(days) / 365.25)
}
