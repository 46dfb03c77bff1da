package plan

import (
	"github.com/music-group/flatbuffers/internal/schema"
)

// WriteOrder returns the builder write order of fields as indexes into
// fields.
//
// Without sortbysize fields are written in declaration order. With it, fields
// are grouped into power-of-two size classes from the largest scalar size
// down to one byte, and each class is walked in reverse declaration order.
func WriteOrder(fields []FieldPlan, sortBySize bool) []int {
	order := make([]int, 0, len(fields))

	if !sortBySize {
		for i := range fields {
			order = append(order, i)
		}

		return order
	}

	for size := schema.LargestScalarSize; size > 0; size /= 2 {
		for i := len(fields) - 1; i >= 0; i-- {
			if fields[i].SortSize == size {
				order = append(order, i)
			}
		}
	}

	return order
}
