package primitive_test

import (
	"fmt"

	"overload-resolver/primitive"
)

func Example() {
	fmt.Println(primitive.FromName("int"))
	fmt.Println(primitive.FromName("char").Name())
	fmt.Println(primitive.FromName("Integer"))

	w, _ := primitive.Box(primitive.KindShort)
	fmt.Println(w, w.ClassName())

	k, _ := primitive.Unbox(primitive.WrapperByClass("java.lang.Character"))
	fmt.Println(k)
	// Output:
	// KindInt
	// char
	// KindEnum(0)
	// Short java.lang.Short
	// KindChar
}
