package dataset_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/okian/riskboard/internal/adapters/dataset"
	"github.com/okian/riskboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const sampleCSV = `id,name,sex,race,age,age_cat,c_charge_desc,state,priors_count,decile_score,two_year_recid
1,miguel hernandez,Male,Other,69,Greater than 45,Aggravated Assault,FL,0,1,0
2,kevon dixon,Male,African-American,34,25 - 45,Felony Battery,FL,0,3,1
3,ed philo,Male,African-American,24,Less than 25,Possession of Cocaine,FL,4,4,1
4,marsha miles,Female,Caucasian,44,25 - 45,Battery,FL,21,8,0
`

func TestParse(t *testing.T) {
	Convey("Given a well-formed dataset", t, func() {
		Convey("When parsing it", func() {
			table, err := dataset.Parse(strings.NewReader(sampleCSV))

			Convey("Then all rows load in source order", func() {
				So(err, ShouldBeNil)
				So(table.Records, ShouldHaveLength, 4)
				So(table.SkippedRows, ShouldEqual, 0)
				So(table.Records[0].ID, ShouldEqual, "1")
				So(table.Records[3].ID, ShouldEqual, "4")
			})

			Convey("And derived fields are computed per row", func() {
				So(table.Records[0].RecidivismStatus, ShouldEqual, model.StatusNoRecidivism)
				So(table.Records[1].RecidivismStatus, ShouldEqual, model.StatusRecidivism)
				So(table.Records[0].PriorsBin, ShouldEqual, "0")
				So(table.Records[2].PriorsBin, ShouldEqual, "3-5")
				So(table.Records[3].PriorsBin, ShouldEqual, "21+")
			})

			Convey("And distinct filter options are sorted", func() {
				So(table.Races, ShouldResemble, []string{"African-American", "Caucasian", "Other"})
				So(table.AgeCategories, ShouldResemble, []string{"25 - 45", "Greater than 45", "Less than 25"})
			})
		})

		Convey("When parsing it twice", func() {
			first, err1 := dataset.Parse(strings.NewReader(sampleCSV))
			second, err2 := dataset.Parse(strings.NewReader(sampleCSV))

			Convey("Then normalization is deterministic", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second.Records, ShouldResemble, first.Records)
				So(second.Races, ShouldResemble, first.Races)
				So(second.AgeCategories, ShouldResemble, first.AgeCategories)
			})
		})
	})

	Convey("Given a dataset with missing and malformed cells", t, func() {
		csvData := `id,sex,race,age,age_cat,priors_count,decile_score,two_year_recid
1,Male,Other,,25 - 45,3,7,1
2,Male,Other,30,25 - 45,,not-a-number,
3,Female,Other,41,25 - 45,105,9,0
`

		Convey("When parsing it", func() {
			table, err := dataset.Parse(strings.NewReader(csvData))

			Convey("Then absent cells become absent fields", func() {
				So(err, ShouldBeNil)
				So(table.Records, ShouldHaveLength, 3)
				So(table.Records[0].Age, ShouldBeNil)
				So(table.Records[1].PriorsCount, ShouldBeNil)
				So(table.Records[1].DecileScore, ShouldBeNil)
				So(table.Records[1].TwoYearRecid, ShouldBeNil)
				So(table.Records[1].RecidivismStatus, ShouldEqual, "")
				So(table.Records[1].PriorsBin, ShouldEqual, "")
			})

			Convey("And an out-of-range priors count maps to the null bucket", func() {
				So(*table.Records[2].PriorsCount, ShouldEqual, 105)
				So(table.Records[2].PriorsBin, ShouldEqual, "")
			})
		})
	})

	Convey("Given a dataset missing a required column", t, func() {
		csvData := `id,sex,race,age,age_cat,priors_count,two_year_recid
1,Male,Other,30,25 - 45,3,1
`

		Convey("When parsing it", func() {
			table, err := dataset.Parse(strings.NewReader(csvData))

			Convey("Then a schema error names the column and no table comes back", func() {
				So(table, ShouldBeNil)
				So(errors.Is(err, dataset.ErrSchema), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "decile_score")
			})
		})
	})

	Convey("Given headers with mixed case and spaces", t, func() {
		csvData := `ID,Sex,Race,Age,Age Cat,Priors Count,Decile Score,Two Year Recid
1,Male,Other,30,25 - 45,3,7,1
`

		Convey("When parsing it", func() {
			table, err := dataset.Parse(strings.NewReader(csvData))

			Convey("Then headers are folded before matching", func() {
				So(err, ShouldBeNil)
				So(table.Records, ShouldHaveLength, 1)
				So(*table.Records[0].DecileScore, ShouldEqual, 7)
			})
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a missing source file", t, func() {
		Convey("When loading it", func() {
			table, err := dataset.Load("/nonexistent/records.csv")

			Convey("Then a load error comes back and no table", func() {
				So(table, ShouldBeNil)
				So(errors.Is(err, dataset.ErrLoad), ShouldBeTrue)
			})
		})
	})
}
