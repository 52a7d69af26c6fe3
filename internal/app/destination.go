package app

import (
	"context"
	"fmt"

	"mediaship/internal/domain"
)

// DestinationResolver interactively builds the remote destination path.
// Every category except series maps straight to <base>/<category>/; series
// drills into the serie and season folders first.
type DestinationResolver struct {
	Base         string
	SeriesFolder string
	Lister       *Lister
	Menu         Menu
}

func (d *DestinationResolver) Resolve(ctx context.Context) (string, error) {
	choices, err := d.Menu.Pick("Are these files movies or episodes from a serie?", domain.Categories(), false)
	if err != nil {
		return "", err
	}
	if len(choices) == 0 {
		return "", ErrNothingSelected
	}
	category := choices[0]

	destination := fmt.Sprintf("%s/%s/", d.Base, category)
	if category != string(domain.CategorySeries) {
		return destination, nil
	}

	serie, err := d.pickOne(ctx, "Please select the serie folder!", d.SeriesFolder)
	if err != nil {
		return "", err
	}
	season, err := d.pickOne(ctx, "Please select the season folder!", fmt.Sprintf("%s/%s", d.SeriesFolder, serie))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/series/%s/%s/", d.Base, serie, season), nil
}

func (d *DestinationResolver) pickOne(ctx context.Context, title, folder string) (string, error) {
	items, err := d.Lister.List(ctx, folder)
	if err != nil {
		return "", err
	}
	choices, err := d.Menu.Pick(title, items, false)
	if err != nil {
		return "", err
	}
	if len(choices) == 0 {
		return "", ErrNothingSelected
	}
	return choices[0], nil
}
