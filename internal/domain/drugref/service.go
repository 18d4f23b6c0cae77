package drugref

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Service answers drug lookups and interaction checks against the
// reference table.
type Service struct {
	drugs DrugRepository
}

func NewService(drugs DrugRepository) *Service {
	return &Service{drugs: drugs}
}

// Seed loads the static reference table. Safe to run repeatedly.
func (s *Service) Seed(ctx context.Context) (int, error) {
	for i := range SeedDrugs {
		d := SeedDrugs[i]
		if err := s.drugs.Upsert(ctx, &d); err != nil {
			return 0, fmt.Errorf("seed drug %s: %w", d.Name, err)
		}
	}
	return len(SeedDrugs), nil
}

func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]*Drug, int, error) {
	if strings.TrimSpace(query) == "" {
		return nil, 0, fmt.Errorf("search query is required")
	}
	return s.drugs.Search(ctx, strings.TrimSpace(query), limit, offset)
}

func (s *Service) Get(ctx context.Context, name string) (*Drug, error) {
	return s.drugs.GetByName(ctx, normalizeName(name))
}

// Stats reports how many drugs the reference table holds.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	n, err := s.drugs.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{TotalDrugs: n}, nil
}

// CheckInteractions flags pairwise drug-drug interactions, food
// interactions for each known drug, and contraindications against the
// supplied patient conditions. Drugs missing from the reference are
// skipped and reported in Unknown.
func (s *Service) CheckInteractions(ctx context.Context, req *CheckRequest) (*CheckResult, error) {
	if len(req.Medications) == 0 {
		return nil, fmt.Errorf("at least one medication is required")
	}

	names := make([]string, 0, len(req.Medications))
	seen := make(map[string]bool)
	for _, m := range req.Medications {
		n := normalizeName(m)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}

	found, err := s.drugs.GetByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("load drugs: %w", err)
	}
	byName := make(map[string]*Drug, len(found))
	for _, d := range found {
		byName[d.Name] = d
	}

	result := &CheckResult{Findings: []InteractionFinding{}}
	for _, n := range names {
		if byName[n] == nil {
			result.Unknown = append(result.Unknown, n)
		}
	}

	dedup := make(map[string]bool)
	add := func(f InteractionFinding) {
		a, b := f.DrugA, f.DrugB
		if b < a {
			a, b = b, a
		}
		key := f.Type + "|" + a + "|" + b
		if dedup[key] {
			return
		}
		dedup[key] = true
		result.Findings = append(result.Findings, f)
	}

	for i := 0; i < len(names); i++ {
		a := byName[names[i]]
		if a == nil {
			continue
		}
		for j := i + 1; j < len(names); j++ {
			b := byName[names[j]]
			if b == nil {
				continue
			}
			if listsDrug(a, b) {
				add(InteractionFinding{
					Type: FindingDrugDrug, Severity: SeverityHigh,
					DrugA: a.Name, DrugB: b.Name, Detail: a.Warnings,
				})
			} else if listsDrug(b, a) {
				add(InteractionFinding{
					Type: FindingDrugDrug, Severity: SeverityHigh,
					DrugA: a.Name, DrugB: b.Name, Detail: b.Warnings,
				})
			}
		}

		for _, food := range a.FoodInteractions {
			add(InteractionFinding{
				Type: FindingDrugFood, Severity: SeverityModerate,
				DrugA: a.Name, DrugB: food, Detail: a.Warnings,
			})
		}

		for _, cond := range req.Conditions {
			c := normalizeName(cond)
			if c == "" {
				continue
			}
			for _, contra := range a.Contraindications {
				if strings.Contains(contra, c) || strings.Contains(c, contra) {
					add(InteractionFinding{
						Type: FindingContraindication, Severity: SeverityCritical,
						DrugA: a.Name, DrugB: c, Detail: "contraindicated: " + contra,
					})
					break
				}
			}
		}
	}

	sort.Slice(result.Findings, func(i, j int) bool {
		if result.Findings[i].DrugA != result.Findings[j].DrugA {
			return result.Findings[i].DrugA < result.Findings[j].DrugA
		}
		return result.Findings[i].Type < result.Findings[j].Type
	})
	return result, nil
}

// listsDrug reports whether a's interaction list names b, either directly
// or through b's drug class ("nsaids", "ace inhibitors").
func listsDrug(a, b *Drug) bool {
	class := strings.ToLower(b.Class)
	for _, entry := range a.Interactions {
		if entry == b.Name {
			return true
		}
		if class != "" && (strings.Contains(entry, class) || strings.Contains(class, entry)) {
			return true
		}
	}
	return false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
