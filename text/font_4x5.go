package text

// 4x5 glyphs, uppercase only.

var glyphs4x5 = map[byte][]string{
	'A': {".##.", "#..#", "####", "#..#", "#..#"},
	'B': {"###.", "#..#", "###.", "#..#", "###."},
	'C': {".##.", "#..#", "#...", "#..#", ".##."},
	'D': {"###.", "#..#", "#..#", "#..#", "###."},
	'E': {"####", "#...", "###.", "#...", "####"},
	'F': {"####", "#...", "###.", "#...", "#..."},
	'G': {".##.", "#...", "#.##", "#..#", ".##."},
	'H': {"#..#", "#..#", "####", "#..#", "#..#"},
	'I': {"..#.", "..#.", "..#.", "..#.", "..#."},
	'J': {"...#", "...#", "...#", "#..#", ".##."},
	'K': {"#..#", "#.#.", "##..", "#.#.", "#..#"},
	'L': {"#...", "#...", "#...", "#...", "####"},
	'M': {"#..#", "####", "#..#", "#..#", "#..#"},
	'N': {"#..#", "##.#", "#.##", "#..#", "#..#"},
	'O': {".##.", "#..#", "#..#", "#..#", ".##."},
	'P': {"###.", "#..#", "###.", "#...", "#..."},
	'Q': {".##.", "#..#", "#..#", "#.##", ".###"},
	'R': {"###.", "#..#", "###.", "#.#.", "#..#"},
	'S': {".###", "#...", ".##.", "...#", "###."},
	'T': {"####", "..#.", "..#.", "..#.", "..#."},
	'U': {"#..#", "#..#", "#..#", "#..#", ".##."},
	'V': {"#.#.", "#.#.", "#.#.", "#.#.", ".#.."},
	'W': {"#..#", "#..#", "#..#", "####", "#..#"},
	'X': {"#.#.", "#.#.", ".#..", "#.#.", "#.#."},
	'Y': {"#.#.", "#.#.", ".#..", ".#..", ".#.."},
	'Z': {"####", "...#", ".##.", "#...", "####"},
	'!': {"..#.", "..#.", "..#.", "....", "..#."},
	'"': {"....", ".#.#", ".#.#", "....", "...."},
	'#': {".#.#", "####", ".#.#", "####", ".#.#"},
	'$': {".###", "#.#.", ".##.", ".#.#", "###."},
	'%': {"#..#", "..#.", ".#..", "#..#", "...."},
	'&': {".##.", "#...", ".#.#", "#.#.", ".#.#"},
	'\'': {"....", ".#..", ".#..", "....", "...."},
	'(': {"..#.", ".#..", ".#..", ".#..", "..#."},
	')': {".#..", "..#.", "..#.", "..#.", ".#.."},
	'*': {"....", ".#.#", "..#.", ".#.#", "...."},
	'+': {"....", ".#..", "###.", ".#..", "...."},
	',': {"....", "....", "....", ".#..", ".#.."},
	'-': {"....", "....", "###.", "....", "...."},
	'.': {"....", "....", "....", "....", ".#.."},
	'/': {"....", "...#", "..#.", ".#..", "#..."},
	'0': {"..#.", ".#.#", ".#.#", ".#.#", "..#."},
	'1': {"..#.", ".##.", "..#.", "..#.", ".###"},
	'2': {".##.", "#..#", "..#.", ".#..", "####"},
	'3': {".##.", "...#", ".##.", "...#", ".##."},
	'4': {"#...", "#...", "#.#.", "####", "..#."},
	'5': {"####", "#...", "###.", "...#", "###."},
	'6': {".##.", "#...", "###.", "#..#", ".##."},
	'7': {"####", "...#", "..#.", ".#..", ".#.."},
	'8': {".##.", "#..#", ".##.", "#..#", ".##."},
	'9': {".##.", "#..#", ".###", "...#", ".##."},
	':': {"....", ".#..", "....", ".#..", "...."},
	';': {"....", ".#..", "....", ".#..", ".#.."},
	'<': {"...#", "..#.", ".#..", "..#.", "...#"},
	'=': {"....", "###.", "....", "###.", "...."},
	'>': {"#...", ".#..", "..#.", ".#..", "#..."},
	'?': {".##.", "#..#", "...#", "..#.", ".#.."},
	'@': {"####", "#..#", "#.##", "#...", "####"},
	'[': {".##.", ".#..", ".#..", ".#..", ".##."},
	'\\': {"....", "#...", ".#..", "..#.", "...#"},
	']': {".##.", "..#.", "..#.", "..#.", ".##."},
	'_': {"....", "....", "....", "....", "####"},
	'^': {".#..", "#.#.", "....", "....", "...."},
	'`': {".#..", "..#.", "....", "....", "...."},
	'{': {"..#.", ".#..", "##..", ".#..", "..#."},
	'}': {".#..", "..#.", "..##", "..#.", ".#.."},
	'~': {"....", ".#.#", "#.#.", "....", "...."},
	CodeEllipsis: {"....", "....", "....", "....", ".#.#"},
	CodeDegree: {"..#.", ".#.#", "..#.", "....", "...."},
	CodePound: {".##.", "#..#", "##..", "#...", "####"},
	CodeCurrency: {"....", "#..#", ".##.", ".##.", "#..#"},
	CodeYen: {".#.#", ".#.#", "..#.", ".###", "..#."},
	CodeCent: {"..#.", ".###", ".#..", ".###", "..#."},
	CodeCheck: {"....", "...#", "#.#.", ".#..", "...."},
}

var glyphs4x5Unknown = []string{"####", "#..#", "#..#", "#..#", "####"}
