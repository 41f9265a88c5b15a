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

package treemap_test

import (
	"errors"
	"fmt"

	"github.com/ajwerner/bst"
	"github.com/ajwerner/bst/treemap"
)

func Example() {
	m := treemap.MakeOrdered(
		treemap.Entry[string, int]{Key: "a", Value: 1},
		treemap.Entry[string, int]{Key: "b", Value: 2},
	)
	if _, err := m.At("missing"); errors.Is(err, bst.ErrKeyNotFound) {
		fmt.Println(err)
	}
	*m.Index("c") += 3
	for it := m.Begin(); it.Valid(); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

	// Output:
	// key missing: key not found
	// a 1
	// b 2
	// c 3
}
