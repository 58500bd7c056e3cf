package repository

import (
	"fmt"
	"sync"
	"testing"

	"solo_edu_backend/internal/model"
)

func record(studentID, kcID, level string) model.AssessmentRecord {
	return model.AssessmentRecord{
		StudentID: studentID,
		KCID:      kcID,
		SOLOLevel: level,
		Location:  "Madrid, Spain",
		Coordinate: model.Coordinate{
			Lat: 40.4168,
			Lng: -3.7038,
		},
	}
}

func TestHistoryLatestWins(t *testing.T) {
	repo := NewHistoryRepository()
	repo.Append(record("s1", "KC_1", model.SOLOUniStructural))
	repo.Append(record("s1", "KC_2", model.SOLOMultiStructural))
	repo.Append(record("s1", "KC_1", model.SOLORelational))

	latest, ok := repo.Latest("s1", "KC_1")
	if !ok {
		t.Fatalf("expected a record for (s1, KC_1)")
	}
	if latest.SOLOLevel != model.SOLORelational {
		t.Fatalf("latest SOLO level = %q, want %q", latest.SOLOLevel, model.SOLORelational)
	}
}

func TestHistoryLatestMissingPair(t *testing.T) {
	repo := NewHistoryRepository()
	repo.Append(record("s1", "KC_1", model.SOLOUniStructural))

	if _, ok := repo.Latest("s1", "KC_other"); ok {
		t.Fatalf("expected no record for unknown KC")
	}
	if _, ok := repo.Latest("s2", "KC_1"); ok {
		t.Fatalf("expected no record for unknown student")
	}
}

func TestHistoryFindNewestFirst(t *testing.T) {
	repo := NewHistoryRepository()
	for i := 0; i < 3; i++ {
		rec := record("s1", "KC_1", model.SOLOUniStructural)
		rec.StudentResponse = fmt.Sprintf("answer %d", i)
		repo.Append(rec)
	}
	repo.Append(record("s2", "KC_1", model.SOLOUniStructural))

	got := repo.Find("s1", "KC_1")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].StudentResponse != "answer 2" {
		t.Fatalf("first record = %q, want newest", got[0].StudentResponse)
	}

	all := repo.Find("s1", "")
	if len(all) != 3 {
		t.Fatalf("student filter only: len = %d, want 3", len(all))
	}
}

func TestHistoryConcurrentAppendScan(t *testing.T) {
	repo := NewHistoryRepository()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				repo.Append(record(fmt.Sprintf("s%d", w), "KC_1", model.SOLOUniStructural))
				repo.Latest(fmt.Sprintf("s%d", w), "KC_1")
			}
		}(w)
	}
	wg.Wait()

	if repo.Len() != 800 {
		t.Fatalf("len = %d, want 800", repo.Len())
	}
}

func TestKCRepositoryOrderAndIdempotentRead(t *testing.T) {
	repo := NewKCRepository()
	repo.Save(model.KnowledgeComponent{KCID: "KC_b", Title: "B"})
	repo.Save(model.KnowledgeComponent{KCID: "KC_a", Title: "A"})

	list := repo.List()
	if len(list) != 2 || list[0].KCID != "KC_b" || list[1].KCID != "KC_a" {
		t.Fatalf("list order = %+v, want insertion order", list)
	}

	first, _ := repo.Get("KC_a")
	second, _ := repo.Get("KC_a")
	if first != second {
		t.Fatalf("repeated reads differ: %+v vs %+v", first, second)
	}
}
