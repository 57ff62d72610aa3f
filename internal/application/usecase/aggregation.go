package usecase

import (
	"sort"

	"github.com/avergara/d4d-dashboard-go/internal/domain/entity"
)

// Aggregate derives the four grouping tables of one dataset, summing Quantity
// per exact group key. Sex×age and locality tables keep first-seen key order;
// the specialty table is sorted ascending by total (stable, so ties keep
// first-seen order); the dose table follows doseSort.
func Aggregate(records []entity.DoseRecord, doseSort entity.DoseSort) entity.AggregationSet {
	set := entity.AggregationSet{
		BySexAge:    []entity.SexAgeTotal{},
		ByLocality:  []entity.LocalityTotal{},
		BySpecialty: []entity.SpecialtyTotal{},
		ByDose:      []entity.DoseTotal{},
	}

	type sexAgeKey struct{ sex, age string }
	sexAgeIdx := map[sexAgeKey]int{}
	localityIdx := map[string]int{}
	specialtyIdx := map[string]int{}
	doseIdx := map[entity.DoseOrder]int{}

	for _, rec := range records {
		sa := sexAgeKey{sex: rec.Sex, age: rec.AgeBracket}
		if i, ok := sexAgeIdx[sa]; ok {
			set.BySexAge[i].Quantity += rec.Quantity
		} else {
			sexAgeIdx[sa] = len(set.BySexAge)
			set.BySexAge = append(set.BySexAge, entity.SexAgeTotal{Sex: rec.Sex, AgeBracket: rec.AgeBracket, Quantity: rec.Quantity})
		}

		if i, ok := localityIdx[rec.Locality]; ok {
			set.ByLocality[i].Quantity += rec.Quantity
		} else {
			localityIdx[rec.Locality] = len(set.ByLocality)
			set.ByLocality = append(set.ByLocality, entity.LocalityTotal{Locality: rec.Locality, Quantity: rec.Quantity})
		}

		if i, ok := specialtyIdx[rec.Specialty]; ok {
			set.BySpecialty[i].Quantity += rec.Quantity
		} else {
			specialtyIdx[rec.Specialty] = len(set.BySpecialty)
			set.BySpecialty = append(set.BySpecialty, entity.SpecialtyTotal{Specialty: rec.Specialty, Quantity: rec.Quantity})
		}

		if i, ok := doseIdx[rec.Dose]; ok {
			set.ByDose[i].Quantity += rec.Quantity
		} else {
			doseIdx[rec.Dose] = len(set.ByDose)
			set.ByDose = append(set.ByDose, entity.DoseTotal{Dose: rec.Dose, Quantity: rec.Quantity})
		}
	}

	sort.SliceStable(set.BySpecialty, func(i, j int) bool {
		return set.BySpecialty[i].Quantity < set.BySpecialty[j].Quantity
	})
	sort.SliceStable(set.ByDose, func(i, j int) bool {
		if doseSort == entity.DoseSortDescending {
			return set.ByDose[i].Quantity > set.ByDose[j].Quantity
		}
		return set.ByDose[i].Quantity < set.ByDose[j].Quantity
	})

	return set
}
