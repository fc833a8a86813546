package engine

import "github.com/jstittsworth/matchup-optimizer/internal/models"

// CompareMatchup aggregates both rosters' projected rows into the nine
// category lines. Counting categories sum projected totals; my side wins
// on a strictly better total (strictly lower for turnovers) and every tie
// goes to the opponent. Percentage categories compare aggregate ratios:
// sum of projected makes over sum of projected attempts, with zero
// attempts yielding a ratio of zero. Pure aggregation, so row order on
// either side never changes the result.
func CompareMatchup(myRows, oppRows []models.ProjectedPlayerRow) models.MatchupResult {
	result := models.MatchupResult{
		Lines: make([]models.CategoryLine, 0, len(models.AllCategories)),
	}

	for _, cat := range models.CountingCategories {
		mine := sumCounting(myRows, cat)
		opp := sumCounting(oppRows, cat)
		diff := mine - opp

		winner := models.WinnerOpp
		if (diff > 0 && cat != models.CategoryTOV) || (diff < 0 && cat == models.CategoryTOV) {
			winner = models.WinnerMe
		}
		result.Lines = append(result.Lines, models.CategoryLine{
			Category: cat,
			Mine:     mine,
			Opponent: opp,
			Diff:     diff,
			Winner:   winner,
		})
	}

	result.Lines = append(result.Lines,
		ratioLine(models.CategoryFGP, myRows, oppRows, fgVolume),
		ratioLine(models.CategoryFTP, myRows, oppRows, ftVolume),
	)
	return result
}

func sumCounting(rows []models.ProjectedPlayerRow, cat models.Category) float64 {
	var total float64
	for _, r := range rows {
		total += r.Proj.Counting(cat)
	}
	return total
}

func fgVolume(p models.Projection) (made, attempted float64) { return p.FGM, p.FGA }
func ftVolume(p models.Projection) (made, attempted float64) { return p.FTM, p.FTA }

func ratioLine(
	cat models.Category,
	myRows, oppRows []models.ProjectedPlayerRow,
	volume func(models.Projection) (made, attempted float64),
) models.CategoryLine {
	mine := aggregateRatio(myRows, volume)
	opp := aggregateRatio(oppRows, volume)

	winner := models.WinnerOpp
	if mine > opp {
		winner = models.WinnerMe
	}
	return models.CategoryLine{
		Category: cat,
		Mine:     mine,
		Opponent: opp,
		Diff:     mine - opp,
		Winner:   winner,
	}
}

func aggregateRatio(
	rows []models.ProjectedPlayerRow,
	volume func(models.Projection) (made, attempted float64),
) float64 {
	var made, attempted float64
	for _, r := range rows {
		m, a := volume(r.Proj)
		made += m
		attempted += a
	}
	if attempted <= 0 {
		return 0
	}
	return made / attempted
}
