package simdstring_test

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rawbytedev/simdstring"
)

func ExampleNewString() {
	s := simdstring.NewString("hello")
	s.AppendString(", world")
	fmt.Println(s, s.Len())
	// Output: hello, world 12
}

func ExampleString_Reserve() {
	s := simdstring.New()
	fmt.Println(s.Mode(), s.Cap())
	s.Reserve(100)
	fmt.Println(s.Mode(), s.Cap())
	// Output:
	// inline 64
	// heap 101
}

func ExampleString_Swap() {
	a := simdstring.NewString("short")
	b := simdstring.NewRepeat(80, 'x')
	a.Swap(b)
	fmt.Println(a.Len(), b)
	// Output: 80 short
}

func ExampleString_Find() {
	s := simdstring.NewString("the quick brown fox jumps over the lazy dog")
	fmt.Println(s.Find("the", 0), s.RFind("the", simdstring.NPos), s.Find("cat", 0))
	fmt.Println(s.FindFirstOf("xyz", 0), s.FindLastNotOf("dog", simdstring.NPos))
	// Output:
	// 0 31 -1
	// 18 39
}

func ExampleString_Replace() {
	s := simdstring.NewString("one two three")
	s.ReplaceString(4, 3, "2").Insert(0, simdstring.NewString(">> "))
	s.Erase(s.Len()-6, simdstring.NPos)
	fmt.Println(s)
	// Output: >> one 2
}

func ExampleString_ParseInt() {
	v, n, err := simdstring.NewString("  0x1fz").ParseInt(0)
	fmt.Println(v, n, err)
	// Output: 31 6 <nil>
}

func ExampleString_ReadLine() {
	r := bufio.NewReader(strings.NewReader("first line\nsecond line\n"))
	s := simdstring.New()
	for s.ReadLine(r, '\n') == nil {
		fmt.Printf("%q\n", s)
	}
	// Output:
	// "first line"
	// "second line"
}

func ExampleString_TrimSpace() {
	fmt.Printf("[%s]\n", simdstring.NewString("\t padded \n").TrimSpace())
	// Output: [padded]
}
