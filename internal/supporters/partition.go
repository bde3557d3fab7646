package supporters

import "sort"

// Partition splits records into members and one-off supporters and orders
// each group by total, highest first. A missing total sorts as 0.
// The input slice is left untouched.
func Partition(records []Record) Partitioned {
	result := Partitioned{
		Members: make([]Record, 0),
		OneOffs: make([]Record, 0),
	}

	for _, r := range records {
		if r.IsMember() {
			result.Members = append(result.Members, r)
		} else {
			result.OneOffs = append(result.OneOffs, r)
		}
	}

	sortByAmountDesc(result.Members)
	sortByAmountDesc(result.OneOffs)

	return result
}

func sortByAmountDesc(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Amount() > records[j].Amount()
	})
}
