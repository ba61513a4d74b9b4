package controller

import (
	"bytes"
	"course_cms_backend/internal/config"
	"course_cms_backend/internal/middleware"
	"course_cms_backend/internal/model"
	"course_cms_backend/internal/service"
	"course_cms_backend/internal/util"
	"course_cms_backend/pkg/logger"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// memCourseStore 内存存储，测试HTTP层时替代数据库
type memCourseStore struct {
	courses map[string]*model.Course
}

func (m *memCourseStore) clone(c *model.Course) *model.Course {
	data, _ := json.Marshal(c)
	var out model.Course
	_ = json.Unmarshal(data, &out)
	out.ID = c.ID
	return &out
}

func (m *memCourseStore) Create(course *model.Course) error {
	m.courses[course.ID] = m.clone(course)
	return nil
}

func (m *memCourseStore) FindByID(id string) (*model.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, util.ErrCourseNotFound
	}
	return m.clone(course), nil
}

func (m *memCourseStore) Save(course *model.Course) error {
	m.courses[course.ID] = m.clone(course)
	return nil
}

func (m *memCourseStore) Delete(id string) error {
	if _, ok := m.courses[id]; !ok {
		return util.ErrCourseNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *memCourseStore) Search(f model.CourseFilter) ([]model.Course, int64, error) {
	var out []model.Course
	for _, c := range m.courses {
		if f.Owner != "" && c.OwnerID != f.Owner {
			continue
		}
		out = append(out, *m.clone(c))
	}
	return out, int64(len(out)), nil
}

const testSecret = "controller-test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = time.Hour

	store := &memCourseStore{courses: make(map[string]*model.Course)}
	guard := service.NewOwnerGuard()
	cache := service.NewCourseCache(nil, 0)

	courseCtl := NewCourseController(service.NewCourseService(store, guard, cache))
	sectionCtl := NewSectionController(service.NewSectionService(store, guard, cache))
	lessonCtl := NewLessonController(service.NewLessonService(store, guard, cache))

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) { util.MethodNotAllowed(c) })
	router.NoRoute(func(c *gin.Context) { util.NotFound(c, "Resource not found") })

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		courses := api.Group("/courses")
		courses.GET("", courseCtl.ListCourses)
		courses.POST("", courseCtl.CreateCourse)
		courses.GET("/:courseId", courseCtl.GetCourse)
		courses.PUT("/:courseId", courseCtl.ReplaceCourse)
		courses.PATCH("/:courseId", courseCtl.PatchCourse)
		courses.DELETE("/:courseId", courseCtl.DeleteCourse)

		sections := courses.Group("/:courseId/sections")
		sections.GET("", sectionCtl.ListSections)
		sections.POST("", sectionCtl.AddSection)
		sections.PUT("", sectionCtl.ReplaceSections)
		sections.GET("/:sectionId", sectionCtl.GetSection)
		sections.PUT("/:sectionId", sectionCtl.ReplaceSection)
		sections.PATCH("/:sectionId", sectionCtl.PatchSection)
		sections.DELETE("/:sectionId", sectionCtl.DeleteSection)

		lessons := sections.Group("/:sectionId/lessons")
		lessons.GET("", lessonCtl.ListLessons)
		lessons.POST("", lessonCtl.AddLesson)
		lessons.GET("/:lessonId", lessonCtl.GetLesson)
		lessons.PUT("/:lessonId", lessonCtl.ReplaceLesson)
		lessons.PATCH("/:lessonId", lessonCtl.PatchLesson)
		lessons.DELETE("/:lessonId", lessonCtl.DeleteLesson)
	}

	return router
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	user := &model.User{Email: userID + "@example.com"}
	user.ID = userID
	token, err := util.GenerateJWT(user, testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("invalid JSON response: %v\n%s", err, w.Body.String())
		}
	}
	return w, parsed
}

func TestCourseLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := tokenFor(t, "instructor-1")

	// 创建课程
	w, resp := doRequest(t, router, http.MethodPost, "/api/courses", token, gin.H{
		"title": "Go Backend Engineering",
		"price": 49.99,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %v", w.Code, resp)
	}
	if resp["success"] != true || resp["message"] != "Course created successfully" {
		t.Fatalf("create envelope = %v", resp)
	}
	course := resp["course"].(map[string]interface{})
	courseID := course["id"].(string)
	if course["status"] != "draft" || course["level"] != "beginner" {
		t.Errorf("defaults = %v / %v", course["status"], course["level"])
	}

	// 追加两个章节
	w, resp = doRequest(t, router, http.MethodPost, "/api/courses/"+courseID+"/sections", token, gin.H{"title": "S1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add S1 status = %d: %v", w.Code, resp)
	}
	s1 := resp["section"].(map[string]interface{})
	s1ID := s1["id"].(string)

	w, resp = doRequest(t, router, http.MethodPost, "/api/courses/"+courseID+"/sections", token, gin.H{"title": "S2"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add S2 status = %d: %v", w.Code, resp)
	}
	s2 := resp["section"].(map[string]interface{})
	s2ID := s2["id"].(string)

	if s1["order"].(float64) != 0 || s2["order"].(float64) != 1 {
		t.Errorf("section orders = %v, %v", s1["order"], s2["order"])
	}

	// 删除 S1 后 S2 的 order 收缩为 0
	w, resp = doRequest(t, router, http.MethodDelete, "/api/courses/"+courseID+"/sections/"+s1ID, token, nil)
	if w.Code != http.StatusOK || resp["message"] != "Section deleted successfully" {
		t.Fatalf("delete S1: %d %v", w.Code, resp)
	}

	w, resp = doRequest(t, router, http.MethodGet, "/api/courses/"+courseID+"/sections/"+s2ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get S2 status = %d", w.Code)
	}
	if order := resp["section"].(map[string]interface{})["order"].(float64); order != 0 {
		t.Errorf("S2 order after delete = %v, want 0", order)
	}

	// 新章节里添加课时，order 从 0 开始
	w, resp = doRequest(t, router, http.MethodPost, "/api/courses/"+courseID+"/sections/"+s2ID+"/lessons", token, gin.H{"title": "L1"})
	if w.Code != http.StatusCreated || resp["message"] != "Lesson added successfully" {
		t.Fatalf("add L1: %d %v", w.Code, resp)
	}
	lesson := resp["lesson"].(map[string]interface{})
	if lesson["order"].(float64) != 0 || lesson["type"] != "video" {
		t.Errorf("lesson = %v", lesson)
	}

	// PATCH 只改标题
	w, resp = doRequest(t, router, http.MethodPatch, "/api/courses/"+courseID, token, gin.H{"title": "Renamed"})
	if w.Code != http.StatusOK || resp["message"] != "Course updated successfully" {
		t.Fatalf("patch: %d %v", w.Code, resp)
	}
	patched := resp["course"].(map[string]interface{})
	if patched["title"] != "Renamed" || patched["price"].(float64) != 49.99 {
		t.Errorf("patched = %v", patched)
	}

	// 删除课程
	w, resp = doRequest(t, router, http.MethodDelete, "/api/courses/"+courseID, token, nil)
	if w.Code != http.StatusOK || resp["message"] != "Course deleted successfully" {
		t.Fatalf("delete: %d %v", w.Code, resp)
	}

	w, resp = doRequest(t, router, http.MethodGet, "/api/courses/"+courseID, token, nil)
	if w.Code != http.StatusNotFound || resp["message"] != "Course not found" {
		t.Fatalf("get deleted: %d %v", w.Code, resp)
	}
}

func TestCourseEndpointsRejectMissingToken(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doRequest(t, router, http.MethodGet, "/api/courses", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if resp["success"] != false {
		t.Errorf("envelope = %v", resp)
	}
}

func TestMalformedCourseIDRejectedBeforeLookup(t *testing.T) {
	router := newTestRouter(t)
	token := tokenFor(t, "instructor-1")

	w, resp := doRequest(t, router, http.MethodGet, "/api/courses/not-a-uuid", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp["message"] != "Invalid course ID" {
		t.Errorf("message = %v", resp["message"])
	}
}

func TestForeignOwnerGetsForbidden(t *testing.T) {
	router := newTestRouter(t)
	owner := tokenFor(t, "instructor-1")
	intruder := tokenFor(t, "instructor-2")

	_, resp := doRequest(t, router, http.MethodPost, "/api/courses", owner, gin.H{"title": "Protected"})
	courseID := resp["course"].(map[string]interface{})["id"].(string)

	w, resp := doRequest(t, router, http.MethodPatch, "/api/courses/"+courseID, intruder, gin.H{"title": "Hacked"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if resp["message"] != "Not authorized to update this course" {
		t.Errorf("message = %v", resp["message"])
	}

	// 读取不受所有权限制
	w, _ = doRequest(t, router, http.MethodGet, "/api/courses/"+courseID, intruder, nil)
	if w.Code != http.StatusOK {
		t.Errorf("read status = %d, want 200", w.Code)
	}
}

func TestUnsupportedMethodReturns405(t *testing.T) {
	router := newTestRouter(t)
	token := tokenFor(t, "instructor-1")

	_, resp := doRequest(t, router, http.MethodPost, "/api/courses", token, gin.H{"title": "x"})
	courseID := resp["course"].(map[string]interface{})["id"].(string)

	w, resp := doRequest(t, router, "PROPFIND", "/api/courses/"+courseID, token, nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	if resp["message"] != "Method not allowed" {
		t.Errorf("message = %v", resp["message"])
	}
}

func TestReplaceSectionsMissingKeyRejectedOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := tokenFor(t, "instructor-1")

	_, resp := doRequest(t, router, http.MethodPost, "/api/courses", token, gin.H{"title": "Keep sections"})
	courseID := resp["course"].(map[string]interface{})["id"].(string)
	doRequest(t, router, http.MethodPost, "/api/courses/"+courseID+"/sections", token, gin.H{"title": "S1"})

	w, resp := doRequest(t, router, http.MethodPut, "/api/courses/"+courseID+"/sections", token, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp["message"] != "Sections array is required" {
		t.Errorf("message = %v", resp["message"])
	}

	w, resp = doRequest(t, router, http.MethodGet, "/api/courses/"+courseID+"/sections", token, nil)
	if w.Code != http.StatusOK {
		t.Fatal(w.Code)
	}
	if got := len(resp["sections"].([]interface{})); got != 1 {
		t.Errorf("sections = %d after rejected replace, want 1", got)
	}
}

func TestReplaceSectionsReordersOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := tokenFor(t, "instructor-1")

	_, resp := doRequest(t, router, http.MethodPost, "/api/courses", token, gin.H{"title": "Ordered"})
	courseID := resp["course"].(map[string]interface{})["id"].(string)

	_, resp = doRequest(t, router, http.MethodPost, "/api/courses/"+courseID+"/sections", token, gin.H{"title": "A"})
	aID := resp["section"].(map[string]interface{})["id"].(string)
	_, resp = doRequest(t, router, http.MethodPost, "/api/courses/"+courseID+"/sections", token, gin.H{"title": "B"})
	bID := resp["section"].(map[string]interface{})["id"].(string)

	w, resp := doRequest(t, router, http.MethodPut, "/api/courses/"+courseID+"/sections", token, gin.H{
		"sections": []gin.H{
			{"id": bID, "title": "B"},
			{"id": aID, "title": "A"},
		},
	})
	if w.Code != http.StatusOK || resp["message"] != "Sections updated successfully" {
		t.Fatalf("replace sections: %d %v", w.Code, resp)
	}

	sections := resp["sections"].([]interface{})
	first := sections[0].(map[string]interface{})
	second := sections[1].(map[string]interface{})
	if first["id"] != bID || first["order"].(float64) != 0 {
		t.Errorf("first = %v", first)
	}
	if second["id"] != aID || second["order"].(float64) != 1 {
		t.Errorf("second = %v", second)
	}
}
