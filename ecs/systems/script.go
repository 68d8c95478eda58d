package systems

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/hollowfall/pixelbrawl/ecs"
	"github.com/hollowfall/pixelbrawl/ecs/component"
)

// ScriptResponder runs a tengo script for every collision event, so game
// rules (what a collision means) live in content rather than engine code.
// The script defines:
//
//	on_collision(engine, event)
//
// where event carries both entities and their groups, and engine exposes
// destroy/is_alive/group_of/add_score callbacks into the world. Handlers
// run synchronously on the publish stack, so a script destroying an entity
// is observed by the detector before it evaluates the next pair.
type ScriptResponder struct {
	compiled *tengo.Compiled
	score    int
}

const collisionDispatchScript = `
if __phase == "collision" {
	on_collision(__engine, __event)
}
`

// NewScriptResponder compiles src once. The returned responder's Handle
// method is meant to be subscribed to ecs.EventCollision.
func NewScriptResponder(src []byte) (*ScriptResponder, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), []byte("\n"+collisionDispatchScript)...))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__event", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile collision responder: %w", err)
	}
	return &ScriptResponder{compiled: compiled}, nil
}

// Score returns the running total accumulated through add_score.
func (r *ScriptResponder) Score() int {
	if r == nil {
		return 0
	}
	return r.score
}

// Handle runs the script for one collision event. Script errors are logged
// and absorbed; a broken script must not take down the frame loop.
func (r *ScriptResponder) Handle(w *ecs.World, evt ecs.Event) {
	if r == nil || r.compiled == nil {
		return
	}
	ce, ok := evt.Data.(ecs.CollisionEvent)
	if !ok {
		return
	}

	engine := r.buildEngine(w)
	event := &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"a":       &tengo.Int{Value: int64(ce.A)},
		"b":       &tengo.Int{Value: int64(ce.B)},
		"a_group": &tengo.String{Value: groupOf(w, ce.A)},
		"b_group": &tengo.String{Value: groupOf(w, ce.B)},
	}}

	if err := r.compiled.Set("__engine", engine); err != nil {
		log.Printf("script: set engine: %v", err)
		return
	}
	if err := r.compiled.Set("__event", event); err != nil {
		log.Printf("script: set event: %v", err)
		return
	}
	if err := r.compiled.Set("__phase", "collision"); err != nil {
		log.Printf("script: set phase: %v", err)
		return
	}
	if err := r.compiled.Run(); err != nil {
		log.Printf("script: on_collision: %v", err)
	}
}

func (r *ScriptResponder) buildEngine(w *ecs.World) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"destroy": &tengo.UserFunction{Name: "destroy", Value: func(args ...tengo.Object) (tengo.Object, error) {
			e, err := entityArg(args)
			if err != nil {
				return nil, err
			}
			ecs.DestroyEntity(w, e)
			return tengo.UndefinedValue, nil
		}},
		"is_alive": &tengo.UserFunction{Name: "is_alive", Value: func(args ...tengo.Object) (tengo.Object, error) {
			e, err := entityArg(args)
			if err != nil {
				return nil, err
			}
			if ecs.IsAlive(w, e) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		}},
		"group_of": &tengo.UserFunction{Name: "group_of", Value: func(args ...tengo.Object) (tengo.Object, error) {
			e, err := entityArg(args)
			if err != nil {
				return nil, err
			}
			return &tengo.String{Value: groupOf(w, e)}, nil
		}},
		"add_score": &tengo.UserFunction{Name: "add_score", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			n, ok := tengo.ToInt(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "points", Expected: "int", Found: args[0].TypeName()}
			}
			r.score += n
			return tengo.UndefinedValue, nil
		}},
	}}
}

func entityArg(args []tengo.Object) (ecs.Entity, error) {
	if len(args) != 1 {
		return 0, tengo.ErrWrongNumArguments
	}
	v, ok := tengo.ToInt64(args[0])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: "entity", Expected: "int", Found: args[0].TypeName()}
	}
	return ecs.Entity(uint64(v)), nil
}

func groupOf(w *ecs.World, e ecs.Entity) string {
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		return col.Group
	}
	return ""
}
