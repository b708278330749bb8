package text

// 3x5 glyphs, uppercase only.

var glyphs3x5 = map[byte][]string{
	'!': {".#.", ".#.", ".#.", "...", ".#."},
	'"': {"#.#", "#.#", "...", "...", "..."},
	'#': {"#.#", "###", "#.#", "###", "#.#"},
	'$': {".#.", ".##", "#..", ".##", "##."},
	'%': {"#.#", "..#", ".#.", "#..", "#.#"},
	'&': {".##", "#..", "#.#", ".#.", "..#"},
	'\'': {".#.", ".#.", "...", "...", "..."},
	'(': {".#.", "#..", "#..", "#..", ".#."},
	')': {".#.", "..#", "..#", "..#", ".#."},
	'*': {"#.#", ".#.", "#.#", "...", "..."},
	'+': {"...", ".#.", "###", ".#.", "..."},
	',': {"...", "...", "...", ".#.", "#.."},
	'-': {"...", "...", "###", "...", "..."},
	'.': {"...", "...", "...", "...", ".#."},
	'/': {"..#", "..#", ".#.", "#..", "#.."},
	'0': {".#.", "#.#", "#.#", "#.#", ".#."},
	'1': {".#.", "##.", ".#.", ".#.", ".#."},
	'2': {"##.", "..#", ".##", "#..", "###"},
	'3': {"###", "..#", ".#.", "..#", "##."},
	'4': {"#..", "#..", "#.#", "###", "..#"},
	'5': {"###", "#..", ".##", "..#", "##."},
	'6': {".##", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", ".#.", "#.."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	':': {"...", ".#.", "...", ".#.", "..."},
	';': {"...", ".#.", "...", ".#.", ".#."},
	'<': {"...", "...", ".#.", "#..", ".#."},
	'=': {"...", "###", "...", "###", "..."},
	'>': {"...", "...", ".#.", "..#", ".#."},
	'?': {"###", "..#", ".#.", "...", ".#."},
	'@': {"###", "#.#", "#.#", "#..", "###"},
	'A': {".##", "#.#", "###", "#.#", "#.#"},
	'B': {"##.", "#.#", "###", "#.#", "###"},
	'C': {".##", "#..", "#..", "#..", "###"},
	'D': {"##.", "#.#", "#.#", "#.#", "##."},
	'E': {"###", "#..", "##.", "#..", "###"},
	'F': {"###", "#..", "##.", "#..", "#.."},
	'G': {".##", "#..", "#..", "#.#", "###"},
	'H': {"#.#", "#.#", "###", "#.#", "#.#"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'J': {"..#", "..#", "..#", "#.#", ".#."},
	'K': {"#.#", "#.#", "##.", "#.#", "#.#"},
	'L': {"#..", "#..", "#..", "#..", "###"},
	'M': {"#.#", "###", "#.#", "#.#", "#.#"},
	'N': {"##.", "#.#", "#.#", "#.#", "#.#"},
	'O': {".##", "#.#", "#.#", "#.#", "###"},
	'P': {"##.", "#.#", "###", "#..", "#.."},
	'Q': {".##", "#.#", "#.#", "###", "###"},
	'R': {"##.", "#.#", "#.#", "##.", "#.#"},
	'S': {".##", "#..", "###", "..#", "##."},
	'T': {"###", ".#.", ".#.", ".#.", ".#."},
	'U': {"#.#", "#.#", "#.#", "#.#", ".##"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	'W': {"#.#", "#.#", "#.#", "###", "#.#"},
	'X': {"#.#", "#.#", ".#.", "#.#", "#.#"},
	'Y': {"#.#", "#.#", ".##", "..#", "##."},
	'Z': {"###", "..#", ".#.", "#..", "###"},
	'[': {"##.", "#..", "#..", "#..", "##."},
	'\\': {"#..", "#..", ".#.", "..#", "..#"},
	']': {".##", "..#", "..#", "..#", ".##"},
	'_': {"...", "...", "...", "...", "###"},
	'^': {".#.", "#.#", "...", "...", "..."},
	'`': {"#..", ".#.", "...", "...", "..."},
	'{': {"..#", ".#.", "##.", ".#.", "..#"},
	'|': {".#.", ".#.", ".#.", ".#.", ".#."},
	'}': {"#..", ".#.", ".##", ".#.", "#.."},
	'~': {"#.#", ".#.", "...", "...", "..."},
	CodeEuro: {".##", ".#.", "###", ".#.", ".##"},
	CodeEllipsis: {"...", "...", "...", "...", "#.#"},
	CodeDegree: {".##", ".##", "...", "...", "..."},
	CodePound: {".##", "#..", "##.", "#..", "###"},
	CodeCurrency: {"...", "#.#", ".#.", ".#.", "#.#"},
	CodeYen: {"#.#", "#.#", ".#.", "###", ".#."},
	CodeCent: {".#.", "###", "#..", "###", ".#."},
	CodeCheck: {"...", "..#", "#.#", ".#.", "..."},
}

var glyphs3x5Unknown = []string{"###", "#.#", "#.#", "#.#", "###"}
