package controllers

import (
	"encoding/json"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a new course in draft state.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := findCourseBySlug(reqData.Slug); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course slug is already taken!", nil)
	}

	course := courseModels.Course{
		Slug:        reqData.Slug,
		Title:       reqData.Title,
		Description: reqData.Description,
		Type:        reqData.Type,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates title, description or type of a course.
func AdminUpdateCourse(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Type != "" {
		course.Type = reqData.Type
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft-deletes a course. Enrollment history stays.
func AdminDeleteCourse(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminListCourses lists all courses including drafts.
func AdminListCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// AdminPublishCourse publishes a course so students can see it.
func AdminPublishCourse(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("is_published", true).Error; err != nil {
		log.Printf("Error publishing course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", nil)
}

// AdminCreateModule appends a module to the course's ordered list. The
// new module takes the next free index, indices never have gaps.
func AdminCreateModule(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)
	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	videoRefs, _ := json.Marshal(reqData.VideoRefs)
	docRefs, _ := json.Marshal(reqData.DocRefs)

	module := courseModels.Module{
		CourseID:   course.ID,
		OrderIndex: int(moduleCount(course.ID)),
		Title:      reqData.Title,
		VideoRefs:  videoRefs,
		DocRefs:    docRefs,
		QuizRef:    reqData.QuizRef,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		log.Printf("Error creating module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule updates the module at the given index.
func AdminUpdateModule(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)
	index := c.Locals("moduleIndex").(int)

	reqData := new(courseValidator.ModuleRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.
		Where("course_id = ? AND order_index = ? AND is_deleted = ?", course.ID, index, false).
		First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.VideoRefs != nil {
		module.VideoRefs, _ = json.Marshal(reqData.VideoRefs)
	}
	if reqData.DocRefs != nil {
		module.DocRefs, _ = json.Marshal(reqData.DocRefs)
	}
	if reqData.QuizRef != "" {
		module.QuizRef = reqData.QuizRef
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		log.Printf("Error updating module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule removes the last module of a course. Only the
// highest index can go: removing a middle module would renumber the
// list and orphan recorded completions.
func AdminDeleteModule(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)
	index := c.Locals("moduleIndex").(int)

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if int64(index) != moduleCount(course.ID)-1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only the last module can be deleted!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.
		Where("course_id = ? AND order_index = ? AND is_deleted = ?", course.ID, index, false).
		First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if err := database.Database.Db.Model(&module).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// AdminListModules lists a course's modules in order.
func AdminListModules(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// AdminCreateLiveClass schedules a live class for a course.
func AdminCreateLiveClass(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)
	reqData, ok := c.Locals("validatedLiveClass").(*courseValidator.LiveClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	startsAt := c.Locals("startsAt").(time.Time)

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	liveClass := courseModels.LiveClass{
		CourseID:    course.ID,
		Topic:       reqData.Topic,
		StartsAt:    startsAt,
		MeetingLink: reqData.MeetingLink,
	}

	if err := database.Database.Db.Create(&liveClass).Error; err != nil {
		log.Printf("Error creating live class: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create live class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Live class scheduled successfully!", liveClass)
}

// AdminListLiveClasses lists a course's live classes in schedule order.
func AdminListLiveClasses(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	course, err := findCourseBySlug(slug)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var liveClasses []courseModels.LiveClass
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("starts_at asc").Find(&liveClasses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch live classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live classes fetched successfully!", liveClasses)
}
