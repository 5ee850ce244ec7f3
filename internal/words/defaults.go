package words

// defaultEntries is the built-in practice list used when nothing is stored.
var defaultEntries = []Entry{
	{Key: "computer", Translation: "компьютер"},
	{Key: "telephone", Translation: "телефон"},
	{Key: "window", Translation: "окно"},
	{Key: "apple", Translation: "яблоко"},
	{Key: "bridge", Translation: "мост"},
	{Key: "carry on", Translation: "продолжать"},
	{Key: "library", Translation: "библиотека"},
	{Key: "weather", Translation: "погода"},
}

// Defaults returns a fresh copy of the built-in list.
func Defaults() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}
