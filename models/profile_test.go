package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasSkillIsCaseInsensitive(t *testing.T) {
	p := &StructuredProfile{Skills: []string{"Python", "Docker"}}

	assert.True(t, p.HasSkill("python"))
	assert.True(t, p.HasSkill("DOCKER"))
	assert.False(t, p.HasSkill("Kafka"))
	assert.False(t, p.HasSkill(""))
}

func TestExperienceYearsDefaultsToZero(t *testing.T) {
	p := &StructuredProfile{}
	assert.Equal(t, 0, p.ExperienceYears())

	years := 4
	p.TotalExperienceYears = &years
	assert.Equal(t, 4, p.ExperienceYears())
}

func TestParseEducationLevelHigherDegreeWins(t *testing.T) {
	assert.Equal(t, EducationS2, ParseEducationLevel("Master of Science, BSc 2015"))
	assert.Equal(t, EducationS1, ParseEducationLevel("Sarjana Komputer"))
	assert.Equal(t, EducationLevel(""), ParseEducationLevel("high school"))
}
