package blazon

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test classes standing in for application components.
type (
	testPanel struct{}
	testTab   struct{}
	testPipe  struct{}
)

func TestRegistryAnnotate(t *testing.T) {
	t.Run("it should keep stacked annotations in attachment order", func(t *testing.T) {
		// GIVEN
		reg := New()
		class := ClassOf[testPanel]()
		first := MustQuery(QueryConfig{Selector: "tabs"})
		second := MustViewQuery(QueryConfig{Selector: "header"})

		// WHEN
		reg.Annotate(class, first)
		reg.Annotate(class, second)

		// THEN
		annotations := reg.AnnotationsOf(class)
		require.Len(t, annotations, 2)
		assert.Same(t, first, annotations[0])
		assert.Same(t, second, annotations[1])
	})

	t.Run("it should isolate read-back slices from later registrations", func(t *testing.T) {
		// GIVEN
		reg := New()
		class := ClassOf[testPanel]()
		reg.Annotate(class, MustDirective(DirectiveConfig{Selector: "a"}))

		// WHEN
		snapshot := reg.AnnotationsOf(class)
		reg.Annotate(class, MustDirective(DirectiveConfig{Selector: "b"}))

		// THEN
		assert.Len(t, snapshot, 1)
		assert.Len(t, reg.AnnotationsOf(class), 2)
	})

	t.Run("it should return nothing for an unknown class", func(t *testing.T) {
		reg := New()

		assert.Empty(t, reg.AnnotationsOf(ClassOf[testTab]()))
		assert.Empty(t, reg.ParamsOf(ClassOf[testTab]()))
		assert.Empty(t, reg.MemberNamesOf(ClassOf[testTab]()))
	})

	t.Run("it should panic on a nil class", func(t *testing.T) {
		reg := New()

		assert.Panics(t, func() {
			reg.Annotate(nil, NewOptional())
		})
	})
}

func TestRegistryAnnotateParam(t *testing.T) {
	t.Run("it should place metadata at the parameter index and keep gaps empty", func(t *testing.T) {
		// GIVEN a constructor shaped (a, @Attribute b)
		reg := New()
		class := ClassOf[testTab]()
		attribute := MustAttribute("role")

		// WHEN
		reg.AnnotateParam(class, 1, attribute)

		// THEN
		params := reg.ParamsOf(class)
		require.Len(t, params, 2)
		assert.Empty(t, params[0])
		assert.NotNil(t, params[0])
		require.Len(t, params[1], 1)
		assert.Same(t, attribute, params[1][0])
	})

	t.Run("it should stack several annotations on one parameter in order", func(t *testing.T) {
		// GIVEN
		reg := New()
		class := ClassOf[testTab]()

		// WHEN
		reg.AnnotateParam(class, 0, NewOptional())
		reg.AnnotateParam(class, 0, MustQuery(QueryConfig{Selector: "pane"}))

		// THEN
		params := reg.ParamsOf(class)
		require.Len(t, params, 1)
		require.Len(t, params[0], 2)
		assert.Equal(t, KindOptional, params[0][0].Kind())
		assert.Equal(t, KindQuery, params[0][1].Kind())
	})

	t.Run("it should panic on a negative index", func(t *testing.T) {
		reg := New()

		assert.Panics(t, func() {
			reg.AnnotateParam(ClassOf[testTab](), -1, NewOptional())
		})
	})
}

func TestRegistryAnnotateMember(t *testing.T) {
	t.Run("it should accumulate member annotations and keep first-seen member order", func(t *testing.T) {
		// GIVEN
		reg := New()
		class := ClassOf[testPanel]()

		// WHEN
		reg.AnnotateMember(class, "Tabs", MustQuery(QueryConfig{Selector: "tab"}))
		reg.AnnotateMember(class, "Selected", NewProperty("selectedIndex"))
		reg.AnnotateMember(class, "Tabs", NewProperty(""))

		// THEN
		assert.Equal(t, []string{"Tabs", "Selected"}, reg.MemberNamesOf(class))
		tabs := reg.MemberAnnotationsOf(class, "Tabs")
		require.Len(t, tabs, 2)
		assert.Equal(t, KindQuery, tabs[0].Kind())
		assert.Equal(t, KindProperty, tabs[1].Kind())
	})

	t.Run("it should panic on an empty member name", func(t *testing.T) {
		reg := New()

		assert.Panics(t, func() {
			reg.AnnotateMember(ClassOf[testPanel](), "", NewProperty(""))
		})
	})
}

func TestRegistryClasses(t *testing.T) {
	t.Run("it should list classes in first-registration order", func(t *testing.T) {
		// GIVEN
		reg := New()

		// WHEN
		reg.Annotate(ClassOf[testPanel](), MustComponent(ComponentConfig{Selector: "panel"}))
		reg.AnnotateParam(ClassOf[testTab](), 0, NewHost())
		reg.AnnotateMember(ClassOf[testPipe](), "Out", NewEvent(""))
		reg.Annotate(ClassOf[testPanel](), NewView(ViewConfig{}))

		// THEN
		assert.Equal(
			t,
			[]string{"blazon.testPanel", "blazon.testTab", "blazon.testPipe"},
			classNames(reg),
		)
	})

	t.Run("it should forget everything on reset", func(t *testing.T) {
		// GIVEN
		reg := New()
		reg.Annotate(ClassOf[testPanel](), NewView(ViewConfig{}))

		// WHEN
		reg.Reset()

		// THEN
		assert.Empty(t, reg.Classes())
		assert.Empty(t, reg.AnnotationsOf(ClassOf[testPanel]()))
	})
}

func TestRegistryConcurrency(t *testing.T) {
	t.Run("it should tolerate concurrent registration and reads", func(t *testing.T) {
		// GIVEN
		reg := New()
		class := ClassOf[testPanel]()

		// WHEN
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				reg.Annotate(class, MustDirective(DirectiveConfig{Selector: fmt.Sprintf("s%d", i)}))
				reg.AnnotateParam(class, i, NewOptional())
				reg.AnnotateMember(class, fmt.Sprintf("M%d", i), NewProperty(""))
			}(i)
			go func() {
				defer wg.Done()
				_ = reg.AnnotationsOf(class)
				_ = reg.ParamsOf(class)
				_ = reg.MemberNamesOf(class)
			}()
		}
		wg.Wait()

		// THEN
		assert.Len(t, reg.AnnotationsOf(class), 8)
		assert.Len(t, reg.ParamsOf(class), 8)
		assert.Len(t, reg.MemberNamesOf(class), 8)
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Run("it should expose the package level registration surface", func(t *testing.T) {
		// GIVEN
		t.Cleanup(Default().Reset)
		class := ClassOf[testPipe]()

		// WHEN
		Annotate(class, MustPipe(PipeConfig{Name: "currency"}))
		AnnotateParam(class, 0, NewSelf())
		AnnotateMember(class, "Format", NewProperty(""))

		// THEN
		assert.Len(t, AnnotationsOf(class), 1)
		assert.Len(t, ParamsOf(class), 1)
		assert.Equal(t, []string{"Format"}, MemberNamesOf(class))
		assert.Len(t, MemberAnnotationsOf(class, "Format"), 1)
		assert.Contains(t, classNames(Default()), "blazon.testPipe")
	})
}

func classNames(reg *Registry) []string {
	classes := reg.Classes()
	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = class.String()
	}
	return names
}
