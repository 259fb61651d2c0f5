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

// Package statsview provides a locally running HTTP server offering runtime
// statistics. the underlying functionality is provided by the
// "github.com/go-echarts/statsview" module and is only compiled in when the
// statsview build constraint is present.
//
// after launch, graphical statistics are viewable at:
//
//	localhost:12608/debug/statsview
//
// and standard Go pprof statistics at:
//
//	localhost:12608/debug/pprof/
//
// when built without the constraint, Available() returns false and Launch()
// does nothing.
package statsview
