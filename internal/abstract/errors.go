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

package abstract

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned by lookups which refuse to insert, such as
	// a map's At, when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidIterator is returned by Erase when the iterator does not
	// refer to an element of the tree.
	ErrInvalidIterator = errors.New("invalid iterator")
)
