// This file is part of Nocturne.
//
// Nocturne is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nocturne is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nocturne.  If not, see <https://www.gnu.org/licenses/>.

package game

import (
	"fmt"
	"strings"
)

// Item identifies an inventory item.
type Item int

// List of inventory items.
const (
	ItemNone Item = iota
	ItemMatchbox
	ItemTelegram
	ItemPassport
	ItemBeetle
	ItemKey
	ItemPhonograph
	numItems
)

// NumItems is the number of inventory items.
const NumItems = int(numItems)

func (i Item) String() string {
	switch i {
	case ItemMatchbox:
		return "matchbox"
	case ItemTelegram:
		return "telegram"
	case ItemPassport:
		return "passport"
	case ItemBeetle:
		return "beetle"
	case ItemKey:
		return "key"
	case ItemPhonograph:
		return "phonograph"
	}
	return "none"
}

// ObjectLocation is where an item currently is. The meaning of each value
// is item-specific; the values are opaque stage directions read back by the
// scene scripts.
type ObjectLocation int

// List of valid ObjectLocation values.
const (
	LocationNone ObjectLocation = iota
	Location1
	Location2
	Location3
	Location4
	Location5
)

// Entry is the inventory record for a single item.
type Entry struct {
	Item     Item
	Owned    bool
	Location ObjectLocation
}

// Inventory is the player's inventory. A fixed table, one entry per item.
type Inventory struct {
	entries [NumItems]Entry
}

func (inv *Inventory) reset() {
	for i := range inv.entries {
		inv.entries[i] = Entry{Item: Item(i)}
	}
}

// Get the inventory entry for the specified item. The returned pointer is
// into the inventory's own table, mutations through it are mutations of the
// inventory.
func (inv *Inventory) Get(i Item) *Entry {
	if i < 0 || int(i) >= NumItems {
		return &inv.entries[ItemNone]
	}
	return &inv.entries[i]
}

// String returns a readable dump of the inventory. Used by the debug
// console's show command.
func (inv *Inventory) String() string {
	b := strings.Builder{}
	for i := 1; i < NumItems; i++ {
		e := inv.entries[i]
		b.WriteString(fmt.Sprintf("%s: owned=%v location=%d\n", e.Item, e.Owned, e.Location))
	}
	return b.String()
}
