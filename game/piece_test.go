package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceRotation(t *testing.T) {
	t.Run("four rotations return every shape to its start", func(t *testing.T) {
		for _, template := range Templates {
			piece := template.Instantiate()
			piece.Translate(5, 4)
			start := piece.Coords()

			for i := 0; i < 4; i++ {
				piece.Rotate()
			}

			assert.Equal(t, start, piece.Coords(), "shape %s", template.Shape)
			assert.Equal(t, 0, piece.Rotation(), "shape %s", template.Shape)
		}
	})

	t.Run("preview matches rotation without mutating", func(t *testing.T) {
		for _, template := range Templates {
			piece := template.Instantiate()
			before := piece.Coords()

			preview := piece.RotatedCoords()
			assert.Equal(t, before, piece.Coords())

			piece.Rotate()
			assert.Equal(t, preview, piece.Coords())
			assert.Equal(t, 1, piece.Rotation())
		}
	})

	t.Run("I piece pivots around its second cell", func(t *testing.T) {
		piece := Templates[ShapeI].Instantiate()
		piece.Rotate()

		assert.Equal(t, [4]Coord{{1, -1}, {1, 0}, {1, 1}, {1, 2}}, piece.Coords())
		assert.Equal(t, Coord{1, 0}, piece.Pivot())
	})

	t.Run("offset (x, y) becomes (-y, x)", func(t *testing.T) {
		piece := Templates[ShapeT].Instantiate()
		piece.Rotate()

		// T: (0,1)(1,1)(2,1)(1,0) around (1,1)
		assert.Equal(t, [4]Coord{{1, 0}, {1, 1}, {1, 2}, {2, 1}}, piece.Coords())
	})
}

func TestPieceTranslate(t *testing.T) {
	piece := Templates[ShapeL].Instantiate()
	piece.Translate(3, 2)

	assert.Equal(t, [4]Coord{{3, 3}, {4, 3}, {5, 3}, {5, 2}}, piece.Coords())
	assert.Equal(t, Coord{4, 3}, piece.Pivot())
	assert.Equal(t, 3, piece.MinX())

	piece.Translate(-3, -2)
	assert.Equal(t, Templates[ShapeL].Cells, piece.Coords())
}

func TestPiecesAreValues(t *testing.T) {
	original := Templates[ShapeS].Instantiate()
	copied := original
	copied.Translate(1, 1)
	copied.Rotate()

	assert.Equal(t, Templates[ShapeS].Cells, original.Coords())
	assert.Equal(t, 0, original.Rotation())
}

func TestTemplatesMatchShapes(t *testing.T) {
	assert.Len(t, Templates, len(Shapes))
	for i, template := range Templates {
		assert.Equal(t, Shapes[i], template.Shape)
		assert.Equal(t, i, int(template.Shape), "Templates must be indexable by Shape")
	}
}
