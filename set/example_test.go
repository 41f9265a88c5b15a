// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package set_test

import (
	"fmt"

	"github.com/ajwerner/bst/set"
)

func Example() {
	s := set.MakeOrdered[int]()
	for _, k := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		if _, ok := s.Insert(k); !ok {
			fmt.Println("duplicate", k)
		}
	}
	fmt.Println(s.Len())
	for it := s.Begin(); it.Valid(); it.Next() {
		fmt.Print(it.Key(), " ")
	}
	fmt.Println()

	// Output:
	// duplicate 1
	// 7
	// 1 2 3 4 5 6 9
}
