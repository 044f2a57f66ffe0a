package chords

// builtin 是内置的吉他和弦表（标准调弦，从低音 E 弦到高音 E 弦）。
// Alias 条目指向另一个和弦名，加载时会被解析为扁平表。
var builtin = []Entry{
	{Name: "C", Base: 1, Frets: [6]int{-1, 3, 2, 0, 1, 0}},
	{Name: "Cm", Base: 3, Frets: [6]int{-1, 1, 3, 3, 2, 1}},
	{Name: "Caug", Base: 1, Frets: [6]int{-1, -1, 2, 1, 1, 0}},
	{Name: "Cdim", Base: 3, Frets: [6]int{-1, 1, 2, 3, 2, -1}},
	{Name: "Cdim7", Base: 1, Frets: [6]int{-1, -1, 1, 2, 1, 2}},
	{Name: "C7", Base: 1, Frets: [6]int{0, 3, 2, 3, 1, 0}},
	{Name: "Cmaj7", Base: 1, Frets: [6]int{-1, 3, 2, 0, 0, 0}},
	{Name: "Cm7", Base: 3, Frets: [6]int{-1, 1, 3, 1, 2, 1}},
	{Name: "Csus4", Base: 1, Frets: [6]int{-1, -1, 3, 0, 1, 3}},
	{Name: "Csus", Alias: "Csus4"},
	{Name: "C4", Alias: "Csus4"},
	{Name: "C0", Alias: "Cdim"},
	{Name: "C⁰", Alias: "Cdim"},
	{Name: "Cmb5", Alias: "Cdim"},
	{Name: "Cm7b5", Alias: "Cdim7"},
	{Name: "Cm7(b5)", Alias: "Cdim7"},
	{Name: "Ch", Alias: "Cdim7"},
	{Name: "Cø", Alias: "Cdim7"},
	{Name: "C+", Alias: "Caug"},
	{Name: "Cmin", Alias: "Cm"},
	{Name: "C(maj7)", Alias: "Cmaj7"},
	{Name: "C6", Base: 1, Frets: [6]int{-1, 3, 2, 2, 1, 0}},
	{Name: "C9", Base: 8, Frets: [6]int{1, 3, 1, 2, 1, 3}},
	{Name: "Cadd9", Base: 1, Frets: [6]int{-1, 3, 2, 0, 3, 0}},
	{Name: "C(add9)", Alias: "Cadd9"},
	{Name: "Csus9", Base: 7, Frets: [6]int{-1, -1, 4, 1, 2, 4}},
	{Name: "C(sus9)", Alias: "Csus9"},
	{Name: "C9(11)", Base: 1, Frets: [6]int{-1, 3, 3, 3, 3, -1}},
	{Name: "C11", Base: 3, Frets: [6]int{-1, 1, 3, 1, 4, 1}},
	{Name: "Csus2", Base: 1, Frets: [6]int{-1, 3, 0, 0, 1, -1}},
	{Name: "C#", Base: 1, Frets: [6]int{-1, -1, 3, 1, 2, 1}},
	{Name: "C#m", Base: 1, Frets: [6]int{-1, -1, 2, 1, 2, 0}},
	{Name: "C#aug", Base: 1, Frets: [6]int{-1, -1, 3, 2, 2, 1}},
	{Name: "C#dim", Base: 4, Frets: [6]int{-1, 1, 2, 3, 4, -1}},
	{Name: "C#dim7", Base: 1, Frets: [6]int{-1, -1, 2, 3, 2, 3}},
	{Name: "C#7", Base: 1, Frets: [6]int{-1, -1, 3, 4, 2, 4}},
	{Name: "C#maj7", Base: 1, Frets: [6]int{-1, 4, 3, 1, 1, 1}},
	{Name: "C#m7", Base: 1, Frets: [6]int{-1, -1, 2, 4, 2, 4}},
	{Name: "C#sus4", Base: 4, Frets: [6]int{-1, -1, 3, 3, 4, 1}},
	{Name: "C#sus", Alias: "C#sus4"},
	{Name: "C#4", Alias: "C#sus4"},
	{Name: "C#0", Alias: "C#dim"},
	{Name: "C#⁰", Alias: "C#dim"},
	{Name: "C#mb5", Alias: "C#dim"},
	{Name: "C#m7b5", Alias: "C#dim7"},
	{Name: "C#m7(b5)", Alias: "C#dim7"},
	{Name: "C#h", Alias: "C#dim7"},
	{Name: "C#ø", Alias: "C#dim7"},
	{Name: "C#+", Alias: "C#aug"},
	{Name: "C#min", Alias: "C#m"},
	{Name: "C#(maj7)", Alias: "C#maj7"},
	{Name: "C#add9", Base: 4, Frets: [6]int{-1, 1, 3, 3, 1, 1}},
	{Name: "C#(add9)", Alias: "C#add9"},
	{Name: "Db", Alias: "C#"},
	{Name: "Dbm", Alias: "C#m"},
	{Name: "Dbaug", Alias: "C#aug"},
	{Name: "Dbdim", Alias: "C#dim"},
	{Name: "Dbdim7", Alias: "C#dim7"},
	{Name: "Db7", Alias: "C#7"},
	{Name: "Dbmaj7", Alias: "C#maj7"},
	{Name: "Dbm7", Alias: "C#m7"},
	{Name: "Dbsus4", Alias: "C#sus4"},
	{Name: "Dbsus", Alias: "Dbsus4"},
	{Name: "Db4", Alias: "Dbsus4"},
	{Name: "Db0", Alias: "Dbdim"},
	{Name: "Db⁰", Alias: "Dbdim"},
	{Name: "Dbmb5", Alias: "Dbdim"},
	{Name: "Dbm7b5", Alias: "Dbdim7"},
	{Name: "Dbm7(b5)", Alias: "Dbdim7"},
	{Name: "Dbh", Alias: "Dbdim7"},
	{Name: "Dbø", Alias: "Dbdim7"},
	{Name: "Db+", Alias: "Dbaug"},
	{Name: "Dbmin", Alias: "Dbm"},
	{Name: "Db(maj7)", Alias: "Dbmaj7"},
	{Name: "D", Base: 1, Frets: [6]int{-1, -1, 0, 2, 3, 2}},
	{Name: "Dm", Base: 1, Frets: [6]int{-1, -1, 0, 2, 3, 1}},
	{Name: "Daug", Base: 1, Frets: [6]int{-1, -1, 0, 3, 3, 2}},
	{Name: "Ddim", Base: 1, Frets: [6]int{-1, -1, 0, 1, 3, 1}},
	{Name: "Ddim7", Base: 1, Frets: [6]int{-1, -1, 0, 1, 0, 1}},
	{Name: "D7", Base: 1, Frets: [6]int{-1, -1, 0, 2, 1, 2}},
	{Name: "Dmaj7", Base: 1, Frets: [6]int{-1, -1, 0, 2, 2, 2}},
	{Name: "Dm7", Base: 1, Frets: [6]int{-1, -1, 0, 2, 1, 1}},
	{Name: "Dsus4", Base: 1, Frets: [6]int{-1, -1, 0, 2, 3, 3}},
	{Name: "Dsus", Alias: "Dsus4"},
	{Name: "D4", Alias: "Dsus4"},
	{Name: "D0", Alias: "Ddim"},
	{Name: "D⁰", Alias: "Ddim"},
	{Name: "Dmb5", Alias: "Ddim"},
	{Name: "Dm7b5", Alias: "Ddim7"},
	{Name: "Dm7(b5)", Alias: "Ddim7"},
	{Name: "Dh", Alias: "Ddim7"},
	{Name: "Dø", Alias: "Ddim7"},
	{Name: "D+", Alias: "Daug"},
	{Name: "Dmin", Alias: "Dm"},
	{Name: "D(maj7)", Alias: "Dmaj7"},
	{Name: "D6", Base: 1, Frets: [6]int{-1, 0, 0, 2, 0, 2}},
	{Name: "D9", Base: 10, Frets: [6]int{1, 3, 1, 2, 1, 3}},
	{Name: "Dm9", Base: 1, Frets: [6]int{-1, -1, 3, 2, 1, 0}},
	{Name: "Dadd9", Base: 1, Frets: [6]int{0, 0, 0, 2, 3, 2}},
	{Name: "D(add9)", Alias: "Dadd9"},
	{Name: "D11", Base: 1, Frets: [6]int{3, 0, 0, 2, 1, 0}},
	{Name: "Dsus2", Base: 1, Frets: [6]int{0, 0, 0, 2, 3, 0}},
	{Name: "D#", Base: 3, Frets: [6]int{-1, -1, 3, 1, 2, 1}},
	{Name: "D#m", Base: 1, Frets: [6]int{-1, -1, 4, 3, 4, 2}},
	{Name: "D#aug", Base: 1, Frets: [6]int{-1, -1, 1, 0, 0, 4}},
	{Name: "D#dim", Base: 1, Frets: [6]int{-1, -1, 1, 2, 4, 2}},
	{Name: "D#dim7", Base: 1, Frets: [6]int{-1, -1, 1, 2, 1, 2}},
	{Name: "D#7", Base: 1, Frets: [6]int{-1, -1, 1, 3, 2, 3}},
	{Name: "D#maj7", Base: 1, Frets: [6]int{-1, -1, 1, 3, 3, 3}},
	{Name: "D#m7", Base: 1, Frets: [6]int{-1, -1, 1, 3, 2, 2}},
	{Name: "D#sus4", Base: 1, Frets: [6]int{-1, -1, 1, 3, 4, 4}},
	{Name: "D#sus", Alias: "D#sus4"},
	{Name: "D#4", Alias: "D#sus4"},
	{Name: "D#0", Alias: "D#dim"},
	{Name: "D#⁰", Alias: "D#dim"},
	{Name: "D#mb5", Alias: "D#dim"},
	{Name: "D#m7b5", Alias: "D#dim7"},
	{Name: "D#m7(b5)", Alias: "D#dim7"},
	{Name: "D#h", Alias: "D#dim7"},
	{Name: "D#ø", Alias: "D#dim7"},
	{Name: "D#+", Alias: "D#aug"},
	{Name: "D#min", Alias: "D#m"},
	{Name: "D#(maj7)", Alias: "D#maj7"},
	{Name: "Eb", Alias: "D#"},
	{Name: "Ebm", Alias: "D#m"},
	{Name: "Ebaug", Alias: "D#aug"},
	{Name: "Ebdim", Alias: "D#dim"},
	{Name: "Ebdim7", Alias: "D#dim7"},
	{Name: "Eb7", Alias: "D#7"},
	{Name: "Ebmaj7", Alias: "D#maj7"},
	{Name: "Ebm7", Alias: "D#m7"},
	{Name: "Ebsus4", Alias: "D#sus4"},
	{Name: "Ebsus", Alias: "Ebsus4"},
	{Name: "Eb4", Alias: "Ebsus4"},
	{Name: "Eb0", Alias: "Ebdim"},
	{Name: "Eb⁰", Alias: "Ebdim"},
	{Name: "Ebmb5", Alias: "Ebdim"},
	{Name: "Ebm7b5", Alias: "Ebdim7"},
	{Name: "Ebm7(b5)", Alias: "Ebdim7"},
	{Name: "Ebh", Alias: "Ebdim7"},
	{Name: "Ebø", Alias: "Ebdim7"},
	{Name: "Eb+", Alias: "Ebaug"},
	{Name: "Ebmin", Alias: "Ebm"},
	{Name: "Eb(maj7)", Alias: "Ebmaj7"},
	{Name: "Ebadd9", Base: 1, Frets: [6]int{-1, 1, 1, 3, 4, 1}},
	{Name: "Eb(add9)", Alias: "Ebadd9"},
	{Name: "E", Base: 1, Frets: [6]int{0, 2, 2, 1, 0, 0}},
	{Name: "Em", Base: 1, Frets: [6]int{0, 2, 2, 0, 0, 0}},
	{Name: "Eaug", Base: 1, Frets: [6]int{-1, -1, 2, 1, 1, 0}},
	{Name: "Edim", Base: 1, Frets: [6]int{0, 1, 2, 0, -1, -1}},
	{Name: "Edim7", Base: 1, Frets: [6]int{-1, -1, 2, 3, 2, 3}},
	{Name: "E7", Base: 1, Frets: [6]int{0, 2, 2, 1, 3, 0}},
	{Name: "Emaj7", Base: 1, Frets: [6]int{0, 2, 1, 1, 0, -1}},
	{Name: "Em7", Base: 1, Frets: [6]int{0, 2, 2, 0, 3, 0}},
	{Name: "Esus4", Base: 1, Frets: [6]int{0, 2, 2, 2, 0, 0}},
	{Name: "Esus", Alias: "Esus4"},
	{Name: "E4", Alias: "Esus4"},
	{Name: "E0", Alias: "Edim"},
	{Name: "E⁰", Alias: "Edim"},
	{Name: "Emb5", Alias: "Edim"},
	{Name: "Em7b5", Alias: "Edim7"},
	{Name: "Em7(b5)", Alias: "Edim7"},
	{Name: "Eh", Alias: "Edim7"},
	{Name: "Eø", Alias: "Edim7"},
	{Name: "E+", Alias: "Eaug"},
	{Name: "Emin", Alias: "Em"},
	{Name: "E(maj7)", Alias: "Emaj7"},
	{Name: "E6", Base: 9, Frets: [6]int{-1, -1, 3, 3, 3, 3}},
	{Name: "Em6", Base: 1, Frets: [6]int{0, 2, 2, 0, 2, 0}},
	{Name: "E9", Base: 1, Frets: [6]int{1, 3, 1, 2, 1, 3}},
	{Name: "E11", Base: 1, Frets: [6]int{1, 1, 1, 1, 2, 2}},
	{Name: "F", Base: 1, Frets: [6]int{1, 3, 3, 2, 1, 1}},
	{Name: "Fm", Base: 1, Frets: [6]int{1, 3, 3, 1, 1, 1}},
	{Name: "Faug", Base: 1, Frets: [6]int{-1, -1, 3, 2, 2, 1}},
	{Name: "Fdim", Base: 1, Frets: [6]int{-1, -1, 3, 1, 0, 1}},
	{Name: "Fdim7", Base: 1, Frets: [6]int{-1, -1, 0, 1, 0, 1}},
	{Name: "F7", Base: 1, Frets: [6]int{1, 3, 1, 2, 1, 1}},
	{Name: "Fmaj7", Base: 1, Frets: [6]int{-1, 3, 3, 2, 1, 0}},
	{Name: "Fm7", Base: 1, Frets: [6]int{1, 3, 1, 1, 1, 1}},
	{Name: "Fsus4", Base: 1, Frets: [6]int{-1, -1, 3, 3, 1, 1}},
	{Name: "Fsus", Alias: "Fsus4"},
	{Name: "F4", Alias: "Fsus4"},
	{Name: "F0", Alias: "Fdim"},
	{Name: "F⁰", Alias: "Fdim"},
	{Name: "Fmb5", Alias: "Fdim"},
	{Name: "Fm7b5", Alias: "Fdim7"},
	{Name: "Fm7(b5)", Alias: "Fdim7"},
	{Name: "Fh", Alias: "Fdim7"},
	{Name: "Fø", Alias: "Fdim7"},
	{Name: "F+", Alias: "Faug"},
	{Name: "Fmin", Alias: "Fm"},
	{Name: "F(maj7)", Alias: "Fmaj7"},
	{Name: "F6", Base: 1, Frets: [6]int{-1, 3, 3, 2, 3, -1}},
	{Name: "Fm6", Base: 1, Frets: [6]int{-1, -1, 0, 1, 1, 1}},
	{Name: "F9", Base: 1, Frets: [6]int{2, 4, 2, 3, 2, 4}},
	{Name: "Fadd9", Base: 1, Frets: [6]int{3, 0, 3, 2, 1, 1}},
	{Name: "F(add9)", Alias: "Fadd9"},
	{Name: "F11", Base: 1, Frets: [6]int{1, 3, 1, 3, 1, 1}},
	{Name: "F#", Base: 1, Frets: [6]int{2, 4, 4, 3, 2, 2}},
	{Name: "F#m", Base: 1, Frets: [6]int{2, 4, 4, 2, 2, 2}},
	{Name: "F#aug", Base: 1, Frets: [6]int{-1, -1, 4, 3, 3, 2}},
	{Name: "F#dim", Base: 1, Frets: [6]int{-1, -1, 4, 2, 1, 2}},
	{Name: "F#dim7", Base: 1, Frets: [6]int{-1, -1, 1, 2, 1, 2}},
	{Name: "F#7", Base: 1, Frets: [6]int{-1, -1, 4, 3, 2, 0}},
	{Name: "F#maj7", Base: 1, Frets: [6]int{-1, -1, 4, 3, 2, 1}},
	{Name: "F#m7", Base: 1, Frets: [6]int{2, 0, 2, 2, 2, 0}},
	{Name: "F#sus4", Base: 1, Frets: [6]int{-1, -1, 4, 4, 2, 2}},
	{Name: "F#sus", Alias: "F#sus4"},
	{Name: "F#4", Alias: "F#sus4"},
	{Name: "F#0", Alias: "F#dim"},
	{Name: "F#⁰", Alias: "F#dim"},
	{Name: "F#mb5", Alias: "F#dim"},
	{Name: "F#m7b5", Alias: "F#dim7"},
	{Name: "F#m7(b5)", Alias: "F#dim7"},
	{Name: "F#h", Alias: "F#dim7"},
	{Name: "F#ø", Alias: "F#dim7"},
	{Name: "F#+", Alias: "F#aug"},
	{Name: "F#min", Alias: "F#m"},
	{Name: "F#(maj7)", Alias: "F#maj7"},
	{Name: "F#m6", Base: 1, Frets: [6]int{-1, -1, 1, 2, 2, 2}},
	{Name: "F#9", Base: 1, Frets: [6]int{-1, 1, 2, 1, 2, 2}},
	{Name: "F#11", Base: 1, Frets: [6]int{2, 4, 2, 4, 2, 2}},
	{Name: "Gb", Alias: "F#"},
	{Name: "Gbm", Alias: "F#m"},
	{Name: "Gbaug", Alias: "F#aug"},
	{Name: "Gbdim", Alias: "F#dim"},
	{Name: "Gbdim7", Alias: "F#dim7"},
	{Name: "Gb7", Alias: "F#7"},
	{Name: "Gbmaj7", Alias: "F#maj7"},
	{Name: "Gbm7", Alias: "F#m7"},
	{Name: "Gbsus4", Alias: "F#sus4"},
	{Name: "Gbsus", Alias: "Gbsus4"},
	{Name: "Gb4", Alias: "Gbsus4"},
	{Name: "Gb0", Alias: "Gbdim"},
	{Name: "Gb⁰", Alias: "Gbdim"},
	{Name: "Gbmb5", Alias: "Gbdim"},
	{Name: "Gbm7b5", Alias: "Gbdim7"},
	{Name: "Gbm7(b5)", Alias: "Gbdim7"},
	{Name: "Gbh", Alias: "Gbdim7"},
	{Name: "Gbø", Alias: "Gbdim7"},
	{Name: "Gb+", Alias: "Gbaug"},
	{Name: "Gbmin", Alias: "Gbm"},
	{Name: "Gb(maj7)", Alias: "Gbmaj7"},
	{Name: "Gbm6", Alias: "F#m6"},
	{Name: "Gb9", Alias: "F#9"},
	{Name: "G", Base: 1, Frets: [6]int{3, 2, 0, 0, 0, 3}},
	{Name: "Gm", Base: 3, Frets: [6]int{1, 3, 3, 1, 1, 1}},
	{Name: "Gaug", Base: 1, Frets: [6]int{-1, -1, 1, 0, 0, 4}},
	{Name: "Gdim", Base: 3, Frets: [6]int{1, 2, 3, 1, -1, -1}},
	{Name: "Gdim7", Base: 1, Frets: [6]int{-1, -1, 2, 3, 2, 3}},
	{Name: "G7", Base: 1, Frets: [6]int{3, 2, 0, 0, 0, 1}},
	{Name: "Gmaj7", Base: 2, Frets: [6]int{-1, -1, 4, 3, 2, 1}},
	{Name: "Gm7", Base: 3, Frets: [6]int{1, 3, 1, 1, 1, 1}},
	{Name: "Gsus4", Base: 1, Frets: [6]int{-1, -1, 0, 0, 1, 1}},
	{Name: "Gsus", Alias: "Gsus4"},
	{Name: "G4", Alias: "Gsus4"},
	{Name: "G0", Alias: "Gdim"},
	{Name: "G⁰", Alias: "Gdim"},
	{Name: "Gmb5", Alias: "Gdim"},
	{Name: "Gm7b5", Alias: "Gdim7"},
	{Name: "Gm7(b5)", Alias: "Gdim7"},
	{Name: "Gh", Alias: "Gdim7"},
	{Name: "Gø", Alias: "Gdim7"},
	{Name: "G+", Alias: "Gaug"},
	{Name: "Gmin", Alias: "Gm"},
	{Name: "G(maj7)", Alias: "Gmaj7"},
	{Name: "G6", Base: 1, Frets: [6]int{3, -1, 0, 0, 0, 0}},
	{Name: "Gm6", Base: 1, Frets: [6]int{-1, -1, 2, 3, 3, 3}},
	{Name: "G9", Base: 1, Frets: [6]int{3, -1, 0, 2, 0, 1}},
	{Name: "Gadd9", Base: 3, Frets: [6]int{1, 3, -1, 2, 1, 3}},
	{Name: "G(add9)", Alias: "Gadd9"},
	{Name: "G9(11)", Base: 3, Frets: [6]int{1, 3, 1, 3, 1, 3}},
	{Name: "G11", Base: 1, Frets: [6]int{3, -1, 0, 2, 1, 1}},
	{Name: "G#", Base: 4, Frets: [6]int{1, 3, 3, 2, 1, 1}},
	{Name: "G#m", Base: 4, Frets: [6]int{1, 3, 3, 1, 1, 1}},
	{Name: "G#aug", Base: 1, Frets: [6]int{-1, -1, 2, 1, 1, 0}},
	{Name: "G#dim", Base: 4, Frets: [6]int{1, 2, 3, 1, -1, -1}},
	{Name: "G#dim7", Base: 1, Frets: [6]int{-1, -1, 0, 1, 0, 1}},
	{Name: "G#7", Base: 1, Frets: [6]int{-1, -1, 1, 1, 1, 2}},
	{Name: "G#maj7", Base: 1, Frets: [6]int{-1, -1, 1, 1, 1, 3}},
	{Name: "G#m7", Base: 4, Frets: [6]int{-1, -1, 1, 1, 1, 1}},
	{Name: "G#sus4", Base: 1, Frets: [6]int{-1, -1, 1, 1, 2, 4}},
	{Name: "G#sus", Alias: "G#sus4"},
	{Name: "G#4", Alias: "G#sus4"},
	{Name: "G#0", Alias: "G#dim"},
	{Name: "G#⁰", Alias: "G#dim"},
	{Name: "G#mb5", Alias: "G#dim"},
	{Name: "G#m7b5", Alias: "G#dim7"},
	{Name: "G#m7(b5)", Alias: "G#dim7"},
	{Name: "G#h", Alias: "G#dim7"},
	{Name: "G#ø", Alias: "G#dim7"},
	{Name: "G#+", Alias: "G#aug"},
	{Name: "G#min", Alias: "G#m"},
	{Name: "G#(maj7)", Alias: "G#maj7"},
	{Name: "G#m6", Base: 1, Frets: [6]int{-1, -1, 1, 1, 0, 1}},
	{Name: "Ab", Alias: "G#"},
	{Name: "Abm", Alias: "G#m"},
	{Name: "Abaug", Alias: "G#aug"},
	{Name: "Abdim", Alias: "G#dim"},
	{Name: "Abdim7", Alias: "G#dim7"},
	{Name: "Ab7", Alias: "G#7"},
	{Name: "Abmaj7", Alias: "G#maj7"},
	{Name: "Abm7", Alias: "G#m7"},
	{Name: "Absus4", Alias: "G#sus4"},
	{Name: "Absus", Alias: "Absus4"},
	{Name: "Ab4", Alias: "Absus4"},
	{Name: "Ab0", Alias: "Abdim"},
	{Name: "Ab⁰", Alias: "Abdim"},
	{Name: "Abmb5", Alias: "Abdim"},
	{Name: "Abm7b5", Alias: "Abdim7"},
	{Name: "Abm7(b5)", Alias: "Abdim7"},
	{Name: "Abh", Alias: "Abdim7"},
	{Name: "Abø", Alias: "Abdim7"},
	{Name: "Ab+", Alias: "Abaug"},
	{Name: "Abmin", Alias: "Abm"},
	{Name: "Ab(maj7)", Alias: "Abmaj7"},
	{Name: "Abm6", Alias: "G#m6"},
	{Name: "Ab11", Base: 4, Frets: [6]int{1, 3, 1, 3, 1, 1}},
	{Name: "A", Base: 1, Frets: [6]int{-1, 0, 2, 2, 2, 0}},
	{Name: "Am", Base: 1, Frets: [6]int{-1, 0, 2, 2, 1, 0}},
	{Name: "Aaug", Base: 1, Frets: [6]int{-1, 0, 3, 2, 2, 1}},
	{Name: "Adim", Base: 1, Frets: [6]int{-1, 0, 1, 2, 1, -1}},
	{Name: "Adim7", Base: 1, Frets: [6]int{-1, -1, 1, 2, 1, 2}},
	{Name: "A7", Base: 1, Frets: [6]int{-1, 0, 2, 0, 2, 0}},
	{Name: "Amaj7", Base: 1, Frets: [6]int{-1, 0, 2, 1, 2, 0}},
	{Name: "Am7", Base: 1, Frets: [6]int{-1, 0, 2, 2, 1, 3}},
	{Name: "Asus4", Base: 1, Frets: [6]int{-1, -1, 2, 2, 3, 0}},
	{Name: "Asus", Alias: "Asus4"},
	{Name: "A4", Alias: "Asus4"},
	{Name: "A0", Alias: "Adim"},
	{Name: "A⁰", Alias: "Adim"},
	{Name: "Amb5", Alias: "Adim"},
	{Name: "Am7b5", Alias: "Adim7"},
	{Name: "Am7(b5)", Alias: "Adim7"},
	{Name: "Ah", Alias: "Adim7"},
	{Name: "Aø", Alias: "Adim7"},
	{Name: "A+", Alias: "Aaug"},
	{Name: "Amin", Alias: "Am"},
	{Name: "Am/F", Base: 1, Frets: [6]int{1, 0, 2, 2, 1, 0}},
	{Name: "A(maj7)", Alias: "Amaj7"},
	{Name: "A6", Base: 1, Frets: [6]int{-1, -1, 2, 2, 2, 2}},
	{Name: "Am6", Base: 1, Frets: [6]int{-1, 0, 2, 2, 1, 2}},
	{Name: "A9", Base: 1, Frets: [6]int{-1, 0, 2, 1, 0, 0}},
	{Name: "Am9", Base: 5, Frets: [6]int{-1, 0, 1, 1, 1, 3}},
	{Name: "A11", Base: 1, Frets: [6]int{-1, 4, 2, 4, 3, 3}},
	{Name: "Asus2", Base: 1, Frets: [6]int{0, 0, 2, 2, 0, 0}},
	{Name: "A#", Base: 1, Frets: [6]int{-1, 1, 3, 3, 3, 1}},
	{Name: "A#m", Base: 1, Frets: [6]int{-1, 1, 3, 3, 2, 1}},
	{Name: "A#aug", Base: 1, Frets: [6]int{-1, -1, 0, 3, 3, 2}},
	{Name: "A#dim", Base: 1, Frets: [6]int{-1, 1, 2, 3, 2, 0}},
	{Name: "A#dim7", Base: 1, Frets: [6]int{-1, -1, 2, 3, 2, 3}},
	{Name: "A#7", Base: 3, Frets: [6]int{-1, -1, 1, 1, 1, 2}},
	{Name: "A#maj7", Base: 1, Frets: [6]int{-1, 1, 3, 2, 3, -1}},
	{Name: "A#m7", Base: 1, Frets: [6]int{-1, 1, 3, 1, 2, 1}},
	{Name: "A#sus4", Base: 1, Frets: [6]int{-1, -1, 3, 3, 4, 1}},
	{Name: "A#sus", Alias: "A#sus4"},
	{Name: "A#4", Alias: "A#sus4"},
	{Name: "A#0", Alias: "A#dim"},
	{Name: "A#⁰", Alias: "A#dim"},
	{Name: "A#mb5", Alias: "A#dim"},
	{Name: "A#m7b5", Alias: "A#dim7"},
	{Name: "A#m7(b5)", Alias: "A#dim7"},
	{Name: "A#h", Alias: "A#dim7"},
	{Name: "A#ø", Alias: "A#dim7"},
	{Name: "A#+", Alias: "A#aug"},
	{Name: "A#min", Alias: "A#m"},
	{Name: "A#(maj7)", Alias: "A#maj7"},
	{Name: "Bb", Alias: "A#"},
	{Name: "Bbm", Alias: "A#m"},
	{Name: "Bbaug", Alias: "A#aug"},
	{Name: "Bbdim", Alias: "A#dim"},
	{Name: "Bbdim7", Alias: "A#dim7"},
	{Name: "Bb7", Alias: "A#7"},
	{Name: "Bbmaj7", Alias: "A#maj7"},
	{Name: "Bbm7", Alias: "A#m7"},
	{Name: "Bbsus4", Alias: "A#sus4"},
	{Name: "Bbsus", Alias: "Bbsus4"},
	{Name: "Bb4", Alias: "Bbsus4"},
	{Name: "Bb0", Alias: "Bbdim"},
	{Name: "Bb⁰", Alias: "Bbdim"},
	{Name: "Bbmb5", Alias: "Bbdim"},
	{Name: "Bbm7b5", Alias: "Bbdim7"},
	{Name: "Bbm7(b5)", Alias: "Bbdim7"},
	{Name: "Bbh", Alias: "Bbdim7"},
	{Name: "Bbø", Alias: "Bbdim7"},
	{Name: "Bb+", Alias: "Bbaug"},
	{Name: "Bbmin", Alias: "Bbm"},
	{Name: "Bb(maj7)", Alias: "Bbmaj7"},
	{Name: "Bb6", Base: 1, Frets: [6]int{-1, -1, 3, 3, 3, 3}},
	{Name: "Bb9", Base: 6, Frets: [6]int{1, 3, 1, 2, 1, 3}},
	{Name: "Bbm9", Base: 6, Frets: [6]int{-1, -1, -1, 1, 1, 3}},
	{Name: "Bb11", Base: 6, Frets: [6]int{1, 3, 1, 3, 4, 1}},
	{Name: "B", Base: 1, Frets: [6]int{-1, 2, 4, 4, 4, 2}},
	{Name: "Bm", Base: 1, Frets: [6]int{-1, 2, 4, 4, 3, 2}},
	{Name: "Baug", Base: 1, Frets: [6]int{-1, -1, 1, 0, 0, 4}},
	{Name: "Bdim", Base: 1, Frets: [6]int{-1, 2, 3, 4, 3, -1}},
	{Name: "Bdim7", Base: 1, Frets: [6]int{-1, -1, 0, 1, 0, 1}},
	{Name: "B7", Base: 1, Frets: [6]int{-1, 2, 1, 2, 0, 2}},
	{Name: "Bmaj7", Base: 1, Frets: [6]int{-1, 2, 4, 3, 4, -1}},
	{Name: "Bm7", Base: 2, Frets: [6]int{-1, 1, 3, 1, 2, 1}},
	{Name: "Bsus4", Base: 2, Frets: [6]int{-1, -1, 3, 3, 4, 1}},
	{Name: "Bsus", Alias: "Bsus4"},
	{Name: "B4", Alias: "Bsus4"},
	{Name: "B0", Alias: "Bdim"},
	{Name: "B⁰", Alias: "Bdim"},
	{Name: "Bmb5", Alias: "Bdim"},
	{Name: "Bm7b5", Alias: "Bdim7"},
	{Name: "Bm7(b5)", Alias: "Bdim7"},
	{Name: "Bh", Alias: "Bdim7"},
	{Name: "Bø", Alias: "Bdim7"},
	{Name: "B+", Alias: "Baug"},
	{Name: "Bmin", Alias: "Bm"},
	{Name: "B(maj7)", Alias: "Bmaj7"},
	{Name: "Bm6", Base: 1, Frets: [6]int{-1, -1, 4, 4, 3, 4}},
	{Name: "B9", Base: 7, Frets: [6]int{1, 3, 1, 2, 1, 3}},
	{Name: "B11", Base: 7, Frets: [6]int{1, 3, 3, 2, 0, 0}},
	{Name: "Bsus2", Base: 1, Frets: [6]int{-1, 2, 4, 4, 2, 2}},
	{Name: "NC", Base: 1, Frets: [6]int{-1, -1, -1, -1, -1, -1}},
	{Name: "N.C.", Alias: "NC"},
}
