package polygon_test

import (
	"errors"
	"testing"

	"github.com/gerwien/dissect/point"
	"github.com/gerwien/dissect/polygon"
	"github.com/stretchr/testify/assert"
)

func unitSquare() []point.Point {
	return []point.Point{
		point.New(0, 0),
		point.New(1, 0),
		point.New(1, 1),
		point.New(0, 1),
	}
}

func TestArea2XSignedOfUnitSquareIsTwo(t *testing.T) {
	assert.InDelta(t, 2.0, polygon.Area2XSigned(unitSquare()), 1e-9)
}

func TestArea2XSignedIsNegativeForClockwiseWinding(t *testing.T) {
	square := unitSquare()
	reversed := make([]point.Point, len(square))
	for i, p := range square {
		reversed[len(square)-1-i] = p
	}
	assert.Less(t, polygon.Area2XSigned(reversed), 0.0)
}

func TestArea2XSignedOfTooFewPointsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, polygon.Area2XSigned([]point.Point{point.New(0, 0), point.New(1, 0)}))
}

func TestValidateAcceptsUnitSquare(t *testing.T) {
	assert.NoError(t, polygon.Validate(unitSquare()))
}

func TestValidateAcceptsConvexPentagon(t *testing.T) {
	pentagon := []point.Point{
		point.New(0, 0),
		point.New(2, 0),
		point.New(3, 2),
		point.New(1, 3),
		point.New(-1, 2),
	}
	assert.NoError(t, polygon.Validate(pentagon))
}

func TestValidateRejectsTooFewPoints(t *testing.T) {
	err := polygon.Validate([]point.Point{point.New(0, 0), point.New(1, 1)})
	assert.ErrorIs(t, err, polygon.ErrInvalidPolygon)
}

func TestValidateRejectsCollinearPoints(t *testing.T) {
	err := polygon.Validate([]point.Point{
		point.New(0, 0), point.New(1, 0), point.New(2, 0),
	})
	assert.True(t, errors.Is(err, polygon.ErrInvalidPolygon))
}

func TestValidateRejectsSelfIntersectingBowtie(t *testing.T) {
	bowtie := []point.Point{
		point.New(0, 0),
		point.New(1, 1),
		point.New(1, 0),
		point.New(0, 1),
	}
	err := polygon.Validate(bowtie)
	assert.ErrorIs(t, err, polygon.ErrInvalidPolygon)
}

func TestFanTriangulateUnitSquareProducesTwoTriangles(t *testing.T) {
	triangles := polygon.FanTriangulate(unitSquare())
	assert.Len(t, triangles, 2)
}

func TestFanTriangulatePentagonProducesThreeTriangles(t *testing.T) {
	pentagon := []point.Point{
		point.New(0, 0),
		point.New(2, 0),
		point.New(3, 2),
		point.New(1, 3),
		point.New(-1, 2),
	}
	triangles := polygon.FanTriangulate(pentagon)
	assert.Len(t, triangles, 3)
}

func TestFanTriangulateTooFewPointsReturnsNil(t *testing.T) {
	assert.Nil(t, polygon.FanTriangulate([]point.Point{point.New(0, 0), point.New(1, 1)}))
}
