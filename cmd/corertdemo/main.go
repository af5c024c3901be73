package main

import (
	"flag"
	"fmt"
	"log"

	rt "github.com/rivelang/corert"
)

type args struct {
	scenario *string
	color    *bool
}

func readArgs() *args {
	a := &args{
		scenario: flag.String("scenario", "all", "Which demo scenario to run: string, symbol, map, closure, class, main, all"),
		color:    flag.Bool("color", true, "Use ANSI colors when dumping values"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	runtime := rt.NewRuntime()
	defer rt.FreeRuntime(runtime)

	scenarios := map[string]func(*rt.Runtime, bool){
		"string":  demoString,
		"symbol":  demoSymbol,
		"map":     demoMap,
		"closure": demoClosure,
		"class":   demoClass,
		"main":    demoRunMain,
	}

	if *a.scenario == "all" {
		for _, name := range []string{"string", "symbol", "map", "closure", "class", "main"} {
			fmt.Printf("-- %s --\n", name)
			scenarios[name](runtime, *a.color)
		}
		fmt.Printf("live allocations: %d\n", runtime.Live())
		return
	}

	fn, ok := scenarios[*a.scenario]
	if !ok {
		log.Fatalf("unknown scenario %q", *a.scenario)
	}
	fn(runtime, *a.color)
	fmt.Printf("live allocations: %d\n", runtime.Live())
}

func demoString(runtime *rt.Runtime, color bool) {
	v := rt.NewStringFromBytes(runtime, []byte("héllo"))
	fmt.Print(rt.DumpValue(runtime, v, color))
	rt.Release(runtime, v)
}

func demoSymbol(runtime *rt.Runtime, color bool) {
	a := rt.NewSymbol(runtime, []byte("abc"))
	b := rt.NewSymbol(runtime, []byte("abc"))
	fmt.Printf("same identity: %v\n", a.Obj == b.Obj)
	fmt.Print(rt.DumpValue(runtime, a, color))
}

func demoMap(runtime *rt.Runtime, color bool) {
	m := rt.NewMap(runtime, rt.TagI32, 0)
	letters := "abcdefgh"
	for i := 0; i < 8; i++ {
		key := rt.Int32(int32(i + 1))
		val := rt.NewStringFromBytes(runtime, []byte{letters[i]})
		m.Obj.(*rt.Map).Set(runtime, key, val)
		rt.Release(runtime, val)
	}
	fmt.Print(rt.DumpValue(runtime, m, color))
	rt.Release(runtime, m)
}

func demoClosure(runtime *rt.Runtime, color bool) {
	cell := rt.NewRefCell(runtime, rt.Int32(0))

	setTo7 := rt.NewLambda(runtime, func(r *rt.Runtime, this *rt.Lambda, args []rt.Value) rt.Value {
		rt.SetCaptureRef(r, this, 0, rt.Int32(7))
		return rt.Null()
	}, []rt.Value{cell})

	readIt := rt.NewLambda(runtime, func(r *rt.Runtime, this *rt.Lambda, args []rt.Value) rt.Value {
		return this.GetCaptureRef(0)
	}, []rt.Value{cell})

	rt.Invoke(runtime, setTo7.Obj.(*rt.Lambda), nil)
	result := rt.Invoke(runtime, readIt.Obj.(*rt.Lambda), nil)
	fmt.Printf("ref-cell after closures ran: %d\n", result.AsI32())

	rt.Release(runtime, setTo7)
	rt.Release(runtime, readIt)
	rt.Release(runtime, cell)
}

func demoClass(runtime *rt.Runtime, color bool) {
	greeter := runtime.DefineClass("Greeter")
	runtime.DefineClassMethod(greeter, "greet", func(r *rt.Runtime, this *rt.Lambda, args []rt.Value) rt.Value {
		return rt.NewStringFromBytes(r, []byte("hello from Greeter"))
	})

	obj := rt.InitObject(runtime, greeter, 0)
	result := rt.InvokeByName(runtime, obj, "greet", nil)
	fmt.Print(rt.DumpValue(runtime, result, color))

	rt.Release(runtime, result)
	rt.Release(runtime, obj)
}

func demoRunMain(runtime *rt.Runtime, color bool) {
	program := &rt.Program{
		MainFn: func(r *rt.Runtime, this *rt.Lambda, args []rt.Value) rt.Value {
			return rt.NewStringFromBytes(r, []byte("ran program.main_fun via run-main"))
		},
	}
	result := rt.RunMain(runtime, program)
	fmt.Print(rt.DumpValue(runtime, result, color))
	rt.Release(runtime, result)
}
