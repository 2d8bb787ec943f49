package controllers

import (
	"testing"

	courseModels "github.com/Abhishek-ak7/overseas-site-sub002/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func lessonWithID(id uint) LessonWithProgress {
	return LessonWithProgress{Lesson: courseModels.Lesson{Model: gorm.Model{ID: id}}}
}

func TestFlattenLessons(t *testing.T) {
	tests := []struct {
		name    string
		modules []ModuleWithLessons
		want    []uint
	}{
		{
			name:    "no modules",
			modules: nil,
			want:    nil,
		},
		{
			name: "single module keeps lesson order",
			modules: []ModuleWithLessons{
				{Lessons: []LessonWithProgress{lessonWithID(3), lessonWithID(1), lessonWithID(2)}},
			},
			want: []uint{3, 1, 2},
		},
		{
			name: "modules concatenate in order",
			modules: []ModuleWithLessons{
				{Lessons: []LessonWithProgress{lessonWithID(10), lessonWithID(11)}},
				{Lessons: nil},
				{Lessons: []LessonWithProgress{lessonWithID(20)}},
			},
			want: []uint{10, 11, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flattenLessons(tt.modules))
		})
	}
}

func TestLessonIndex(t *testing.T) {
	sequence := []uint{5, 9, 12}

	assert.Equal(t, 0, lessonIndex(sequence, 5))
	assert.Equal(t, 2, lessonIndex(sequence, 12))
	assert.Equal(t, -1, lessonIndex(sequence, 99))
	assert.Equal(t, -1, lessonIndex(nil, 5))
}

func TestLinkNeighbors(t *testing.T) {
	modules := []ModuleWithLessons{
		{Lessons: []LessonWithProgress{lessonWithID(1), lessonWithID(2)}},
		{Lessons: []LessonWithProgress{lessonWithID(3)}},
	}

	linkNeighbors(modules)

	first := modules[0].Lessons[0]
	assert.Nil(t, first.PreviousLessonID)
	require.NotNil(t, first.NextLessonID)
	assert.Equal(t, uint(2), *first.NextLessonID)

	// Neighbors cross module boundaries
	middle := modules[0].Lessons[1]
	require.NotNil(t, middle.PreviousLessonID)
	assert.Equal(t, uint(1), *middle.PreviousLessonID)
	require.NotNil(t, middle.NextLessonID)
	assert.Equal(t, uint(3), *middle.NextLessonID)

	// Last lesson has no wraparound
	last := modules[1].Lessons[0]
	require.NotNil(t, last.PreviousLessonID)
	assert.Equal(t, uint(2), *last.PreviousLessonID)
	assert.Nil(t, last.NextLessonID)
}

func TestLinkNeighborsSingleLesson(t *testing.T) {
	modules := []ModuleWithLessons{
		{Lessons: []LessonWithProgress{lessonWithID(7)}},
	}

	linkNeighbors(modules)

	assert.Nil(t, modules[0].Lessons[0].PreviousLessonID)
	assert.Nil(t, modules[0].Lessons[0].NextLessonID)
}
