// pkg-amsmath.go -
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package latex

// MatrixEnvironments lists the amsmath matrix environments, together
// with the delimiters they place around the matrix.
var MatrixEnvironments = map[string][2]string{
	"matrix":  {"", ""},
	"pmatrix": {"(", ")"},
	"bmatrix": {"[", "]"},
	"vmatrix": {"|", "|"},
}

func addAmsmathMacros(p *Tokenizer) {
	p.macros[`\dfrac`] = typedMacro("AA")
	p.macros[`\tfrac`] = typedMacro("AA")
	p.macros[`\operatorname`] = typedMacro("V")
	p.macros[`\text`] = typedMacro("V")

	for name := range MatrixEnvironments {
		p.environments[name] = bodyEnv("")
	}
	p.environments["array"] = bodyEnv("V")
	p.environments["cases"] = bodyEnv("")
	p.environments["aligned"] = simpleEnv
	p.environments["equation*"] = simpleEnv
}
