package repository

import (
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/util"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *CourseRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Course{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewCourseRepository(db)
}

func seedCourse(t *testing.T, repo *CourseRepository, course *model.Course) *model.Course {
	t.Helper()
	if course.ID == "" {
		course.ID = model.GenerateUUID()
	}
	if course.Status == "" {
		course.Status = model.StatusDraft
	}
	if course.Level == "" {
		course.Level = model.LevelBeginner
	}
	if course.Sections == nil {
		course.Sections = model.SectionList{}
	}
	if err := repo.Create(course); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func TestFindByIDRoundTripsSections(t *testing.T) {
	repo := newTestRepository(t)

	seeded := seedCourse(t, repo, &model.Course{
		Title:   "Go Basics",
		OwnerID: "owner-1",
		Sections: model.SectionList{
			{ID: "s1", Title: "Part 1", Order: 0, Lessons: []model.Lesson{
				{ID: "l1", Title: "Intro", Type: model.LessonVideo, Order: 0},
			}},
		},
	})

	loaded, err := repo.FindByID(seeded.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(loaded.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(loaded.Sections))
	}
	if loaded.Sections[0].Lessons[0].Title != "Intro" {
		t.Errorf("lesson title = %q", loaded.Sections[0].Lessons[0].Title)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.FindByID(model.GenerateUUID())
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Delete(model.GenerateUUID())
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestSearchFilters(t *testing.T) {
	repo := newTestRepository(t)

	seedCourse(t, repo, &model.Course{Title: "Python for Beginners", Description: "Start coding", OwnerID: "owner-1", Status: model.StatusPublished, Category: "Programming", Price: 20})
	seedCourse(t, repo, &model.Course{Title: "Advanced Go", Description: "Learn PYTHON tricks too", OwnerID: "owner-1", Status: model.StatusDraft, Category: "Programming", Price: 60})
	seedCourse(t, repo, &model.Course{Title: "Watercolor Painting", Description: "Art basics", OwnerID: "owner-2", Status: model.StatusPublished, Category: "Art", Price: 45})

	t.Run("by owner", func(t *testing.T) {
		courses, total, err := repo.Search(model.CourseFilter{Owner: "owner-1"})
		if err != nil {
			t.Fatal(err)
		}
		if total != 2 || len(courses) != 2 {
			t.Fatalf("got %d courses (total %d), want 2", len(courses), total)
		}
	})

	t.Run("by status and category", func(t *testing.T) {
		courses, total, err := repo.Search(model.CourseFilter{Status: "published", Category: "Programming"})
		if err != nil {
			t.Fatal(err)
		}
		if total != 1 || courses[0].Title != "Python for Beginners" {
			t.Fatalf("got %v (total %d)", courses, total)
		}
	})

	t.Run("price range inclusive", func(t *testing.T) {
		min, max := 20.0, 45.0
		courses, total, err := repo.Search(model.CourseFilter{PriceMin: &min, PriceMax: &max})
		if err != nil {
			t.Fatal(err)
		}
		if total != 2 {
			t.Fatalf("total = %d, want 2 (bounds inclusive)", total)
		}
		for _, c := range courses {
			if c.Price < min || c.Price > max {
				t.Errorf("course %q price %v outside range", c.Title, c.Price)
			}
		}
	})

	t.Run("search case-insensitive across title and description", func(t *testing.T) {
		_, total, err := repo.Search(model.CourseFilter{Search: "python"})
		if err != nil {
			t.Fatal(err)
		}
		if total != 2 {
			t.Fatalf("total = %d, want 2 (title and description hits)", total)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		courses, total, err := repo.Search(model.CourseFilter{Search: "haskell"})
		if err != nil {
			t.Fatal(err)
		}
		if total != 0 || len(courses) != 0 {
			t.Fatalf("got %d courses (total %d), want none", len(courses), total)
		}
	})
}

func TestSearchSortAndPagination(t *testing.T) {
	repo := newTestRepository(t)

	for i := 1; i <= 5; i++ {
		seedCourse(t, repo, &model.Course{
			Title:   fmt.Sprintf("Course %d", i),
			OwnerID: "owner-1",
			Price:   float64(i * 10),
		})
	}

	courses, total, err := repo.Search(model.CourseFilter{SortBy: "price", Page: 1, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if total != 5 {
		t.Fatalf("total = %d, want 5 regardless of pagination", total)
	}
	if len(courses) != 2 || courses[0].Price != 10 || courses[1].Price != 20 {
		t.Fatalf("page 1 = %v", courses)
	}

	courses, _, err = repo.Search(model.CourseFilter{SortBy: "price", Page: 3, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(courses) != 1 || courses[0].Price != 50 {
		t.Fatalf("page 3 = %v", courses)
	}

	courses, _, err = repo.Search(model.CourseFilter{SortBy: "price", SortDesc: true, Page: 1, Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(courses) != 1 || courses[0].Price != 50 {
		t.Fatalf("desc first = %v", courses)
	}

	// 不在白名单内的排序字段回退到 created_at
	if _, _, err := repo.Search(model.CourseFilter{SortBy: "password; DROP TABLE courses"}); err != nil {
		t.Fatalf("unexpected error for unknown sort field: %v", err)
	}
}
