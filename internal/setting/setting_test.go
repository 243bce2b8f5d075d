package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/suitectl/internal/model"
)

type fakeOwner struct {
	dirty bool
	marks int
}

func (o *fakeOwner) Dirty() bool { return o.dirty }
func (o *fakeOwner) MarkDirty() {
	o.dirty = true
	o.marks++
}

func TestControllers_ReadThroughAndLabels(t *testing.T) {
	owner := &fakeOwner{}
	doc := &model.Documentation{Value: "About"}
	fixture := &model.Fixture{Name: "Open", Args: []string{"url"}}
	tags := &model.Tags{Values: []string{"a", "b"}}
	timeout := &model.Timeout{Value: "1 min", Message: "slow"}
	template := &model.Template{}
	args := &model.Arguments{Values: []string{"${x}"}}
	ret := &model.Return{Values: []string{"${y}"}}

	controllers := []Controller{
		NewDocumentation(owner, doc),
		NewFixture(owner, fixture, "Setup"),
		NewTags(owner, tags, "Tags"),
		NewTimeout(owner, timeout, "Timeout"),
		NewTemplate(owner, template, "Template"),
		NewArguments(owner, args, "Arguments"),
		NewReturnValue(owner, ret),
	}

	var labels, values []string
	var set []bool
	for _, c := range controllers {
		labels = append(labels, c.Label())
		values = append(values, c.Value())
		set = append(set, c.IsSet())
	}

	assert.Equal(t, []string{"Documentation", "Setup", "Tags", "Timeout", "Template", "Arguments", "Return Value"}, labels)
	assert.Equal(t, []string{"About", "Open    url", "a    b", "1 min    slow", "", "${x}", "${y}"}, values)
	assert.Equal(t, []bool{true, true, true, true, false, true, true}, set)

	doc.Value = "Changed underneath"
	assert.Equal(t, "Changed underneath", controllers[0].Value())
}

func TestSetValue_MarksOwnerDirtyOnlyOnChange(t *testing.T) {
	owner := &fakeOwner{}
	doc := &model.Documentation{Value: "same"}
	c := NewDocumentation(owner, doc)

	c.SetValue("same")
	assert.False(t, owner.Dirty())

	c.SetValue("new")
	assert.True(t, c.Dirty())
	assert.Equal(t, "new", doc.Value)
	assert.Equal(t, 1, owner.marks)
}

func TestSetValue_WritesModelFields(t *testing.T) {
	owner := &fakeOwner{}
	fixture := &model.Fixture{}
	tags := &model.Tags{}
	timeout := &model.Timeout{}
	template := &model.Template{}
	args := &model.Arguments{}
	ret := &model.Return{}

	NewFixture(owner, fixture, "Teardown").SetValue("Close", "all")
	NewTags(owner, tags, "Force Tags").SetValue("smoke")
	NewTimeout(owner, timeout, "Test Timeout").SetValue("2s", "")
	NewTemplate(owner, template, "Test Template").SetValue("Check")
	NewArguments(owner, args, "Arguments").SetValue("${a}", "${b}")
	NewReturnValue(owner, ret).SetValue("${a}")

	require.Equal(t, 6, owner.marks)
	assert.Equal(t, []string{"Close", "all"}, fixture.Cells())
	assert.Equal(t, []string{"smoke"}, tags.Values)
	assert.Equal(t, "2s", timeout.Value)
	assert.Equal(t, "Check", template.Value)
	assert.Equal(t, []string{"${a}", "${b}"}, args.Values)
	assert.Equal(t, []string{"${a}"}, ret.Values)
}

func TestSetValue_CopiesCallerSlices(t *testing.T) {
	owner := &fakeOwner{}
	fixture := &model.Fixture{}
	tags := &model.Tags{}
	args := &model.Arguments{}
	ret := &model.Return{}

	in := []string{"one", "two"}
	NewFixture(owner, fixture, "Setup").SetValue("Open", in...)
	NewTags(owner, tags, "Tags").SetValue(in...)
	NewArguments(owner, args, "Arguments").SetValue(in...)
	NewReturnValue(owner, ret).SetValue(in...)
	in[0] = "mutated"

	assert.Equal(t, []string{"one", "two"}, fixture.Args)
	assert.Equal(t, []string{"one", "two"}, tags.Values)
	assert.Equal(t, []string{"one", "two"}, args.Values)
	assert.Equal(t, []string{"one", "two"}, ret.Values)
}

func TestMarkDirty_DelegatesToOwner(t *testing.T) {
	owner := &fakeOwner{}
	c := NewTemplate(owner, &model.Template{}, "Template")

	c.MarkDirty()

	assert.True(t, owner.dirty)
	assert.True(t, c.Dirty())
}
