// This file is part of Gorumble.
//
// Gorumble is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gorumble is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gorumble.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// command line preferences are organised as a stack of groups. only the top
// group is ever consulted
var commandLineStack []map[string]string

// PushCommandLineStack parses a preferences string and adds it as a new group.
// The format of the string is:
//
//	key::value; key::value
//
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) != 2 {
			continue
		}
		group[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack forgets the most recent group. Returns the preferences
// of that group that were not consumed by GetCommandLinePref(), formatted in
// the same way as the string given to PushCommandLineStack() and sorted by key.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, k := range keys {
		unused = append(unused, fmt.Sprintf("%s::%s", k, popped[k]))
	}

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key from the top group of the
// stack. The value is deleted when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	group := commandLineStack[len(commandLineStack)-1]
	if v, ok := group[key]; ok {
		delete(group, key)
		return true, v
	}

	return false, nil
}
