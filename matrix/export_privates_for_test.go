// SPDX-License-Identifier: MIT

package matrix

// DimFromLen exposes dimFromLen to the external test package.
var DimFromLen = dimFromLen
