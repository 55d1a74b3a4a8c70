package testdata

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okian/riskboard/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	profileDivisor     = 8
	blankRate          = 0.05
)

// Constants for generation ranges.
const (
	youngAgeMin  = 18
	youngRange   = 7
	midAgeMin    = 25
	midRange     = 21
	olderAgeMin  = 46
	olderRange   = 30
	lowScoreMax  = 4
	midScoreMin  = 4
	midScoreMax  = 7
	highScoreMin = 7
	maxScore     = 10
	heavyPriors  = 21
	heavyRange   = 15
)

// Constants for profile cases.
const (
	caseYoungHighRisk   = 0
	caseYoungLowRisk    = 1
	caseMidRecidivist   = 2
	caseMidClean        = 3
	caseOlderHighPriors = 4
	caseOlderClean      = 5
	caseMissingAge      = 6
	caseMissingScore    = 7
)

var races = []string{
	"African-American",
	"Asian",
	"Caucasian",
	"Hispanic",
	"Native American",
	"Other",
}

var charges = []string{
	"Battery",
	"Burglary",
	"Driving Under The Influence",
	"Grand Theft",
	"Possession of Cannabis",
	"Resisting Officer",
}

var sexes = []string{"Female", "Male"}

var states = []string{"FL", "GA", "NY", "TX"}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func pick(values []string) string {
	return values[int(getRandomFloat()*float64(len(values)))%len(values)]
}

func randomInt(low, span int) int {
	return low + int(getRandomFloat()*float64(span))
}

// Generate creates the specified number of dataset rows with unique ids. The
// profiles cover every prior-conviction bucket, both outcomes and the blank
// cells the loader is expected to tolerate.
func Generate(ctx context.Context, config *Config, stats *Stats) ([]Row, error) {
	logger.Get().Info(ctx, "generating dataset rows", logger.Int("numRows", config.NumRows))

	rows := make([]Row, 0, config.NumRows+config.MalformedRows)
	for i := 0; i < config.NumRows; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during row generation: %w", ctx.Err())
		default:
		}

		row := generateSingleRow(i, config.Seed)
		if row.Age == "" || row.DecileScore == "" || row.TwoYearRecid == "" {
			stats.RowsWithBlanks++
		}
		rows = append(rows, row)
	}

	for i := 0; i < config.MalformedRows; i++ {
		rows = append(rows, Row{ID: uuid.New().String(), Sex: "Male"})
		stats.RowsMalformed++
	}

	stats.RowsGenerated = len(rows)
	logger.Get().Info(ctx, "generated rows successfully", logger.Int("count", len(rows)))

	return rows, nil
}

// generateSingleRow creates one row for the given index.
func generateSingleRow(index int, seed string) Row {
	row := Row{
		ID:         uuid.New().String(),
		Name:       fmt.Sprintf("%s-person-%d", seed, index),
		Sex:        pick(sexes),
		Race:       pick(races),
		ChargeDesc: pick(charges),
		State:      pick(states),
	}

	age := 0
	score := 0
	priors := 0
	recid := 0

	switch index % profileDivisor {
	case caseYoungHighRisk:
		age = randomInt(youngAgeMin, youngRange)
		score = randomInt(highScoreMin, maxScore-highScoreMin+1)
		priors = randomInt(3, 8)
		recid = 1
	case caseYoungLowRisk:
		age = randomInt(youngAgeMin, youngRange)
		score = randomInt(1, lowScoreMax)
		priors = randomInt(0, 3)
		recid = 0
	case caseMidRecidivist:
		age = randomInt(midAgeMin, midRange)
		score = randomInt(midScoreMin, midScoreMax-midScoreMin+1)
		priors = randomInt(1, 10)
		recid = 1
	case caseMidClean:
		age = randomInt(midAgeMin, midRange)
		score = randomInt(1, lowScoreMax)
		priors = 0
		recid = 0
	case caseOlderHighPriors:
		age = randomInt(olderAgeMin, olderRange)
		score = randomInt(midScoreMin, midScoreMax-midScoreMin+1)
		priors = randomInt(heavyPriors, heavyRange)
		recid = 1
	case caseOlderClean:
		age = randomInt(olderAgeMin, olderRange)
		score = 1
		priors = randomInt(0, 2)
		recid = 0
	case caseMissingAge:
		score = randomInt(1, maxScore)
		priors = randomInt(0, 5)
		recid = int(getRandomFloat() * 2)
	case caseMissingScore:
		age = randomInt(midAgeMin, midRange)
		priors = randomInt(11, 10)
		recid = int(getRandomFloat() * 2)
	}

	if age > 0 {
		row.Age = strconv.Itoa(age)
		row.AgeCat = ageCategory(age)
	}
	if score > 0 {
		row.DecileScore = strconv.Itoa(score)
	}
	row.PriorsCount = strconv.Itoa(priors)
	if getRandomFloat() > blankRate {
		row.TwoYearRecid = strconv.Itoa(recid)
	}

	return row
}

func ageCategory(age int) string {
	switch {
	case age < 25:
		return "Less than 25"
	case age <= 45:
		return "25 - 45"
	default:
		return "Greater than 45"
	}
}

// Summarize fills the timing fields of stats.
func Summarize(stats *Stats, start time.Time) {
	stats.StartTime = start
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
}
