// Package netcdf is a minimal cgo binding over the libnetcdf C API, covering
// only what the GOES field reader needs: opening a dataset, reading a packed
// variable and its scale/offset/fill attributes, and reading global text
// attributes.
package netcdf

/*
#cgo LDFLAGS: -lnetcdf
#include <netcdf.h>
#include <stdlib.h>
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// Type identifies the external type of a variable.
type Type int

const (
	TypeShort Type = C.NC_SHORT
	TypeFloat Type = C.NC_FLOAT
)

// Error wraps a libnetcdf status code.
type Error struct {
	Op   string
	Code int
}

func (e *Error) Error() string {
	return fmt.Sprintf("netcdf: %s: %s", e.Op, C.GoString(C.nc_strerror(C.int(e.Code))))
}

func check(op string, status C.int) error {
	if status != C.NC_NOERR {
		return &Error{Op: op, Code: int(status)}
	}
	return nil
}

// File is an open NetCDF dataset.
type File struct {
	ncid C.int
}

// Open opens a dataset read-only.
func Open(path string) (*File, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var ncid C.int
	if err := check("nc_open "+path, C.nc_open(cPath, C.NC_NOWRITE, &ncid)); err != nil {
		return nil, err
	}
	return &File{ncid: ncid}, nil
}

// Close releases the dataset handle.
func (f *File) Close() error {
	return check("nc_close", C.nc_close(f.ncid))
}

// AttrText reads a global text attribute.
func (f *File) AttrText(name string) (string, error) {
	return attrText(f.ncid, C.NC_GLOBAL, name)
}

// Var looks up a variable by name.
func (f *File) Var(name string) (*Var, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var varid C.int
	if err := check("nc_inq_varid "+name, C.nc_inq_varid(f.ncid, cName, &varid)); err != nil {
		return nil, err
	}
	return &Var{ncid: f.ncid, varid: varid, name: name}, nil
}

// Var is a variable within an open dataset.
type Var struct {
	ncid  C.int
	varid C.int
	name  string
}

// Type returns the variable's external type.
func (v *Var) Type() (Type, error) {
	var t C.nc_type
	if err := check("nc_inq_vartype "+v.name, C.nc_inq_vartype(v.ncid, v.varid, &t)); err != nil {
		return 0, err
	}
	return Type(t), nil
}

// Dims returns the dimension lengths in declaration order.
func (v *Var) Dims() ([]int, error) {
	var ndims C.int
	if err := check("nc_inq_varndims "+v.name, C.nc_inq_varndims(v.ncid, v.varid, &ndims)); err != nil {
		return nil, err
	}
	if ndims == 0 {
		return nil, nil
	}
	dimids := make([]C.int, int(ndims))
	if err := check("nc_inq_vardimid "+v.name, C.nc_inq_vardimid(v.ncid, v.varid, &dimids[0])); err != nil {
		return nil, err
	}
	dims := make([]int, int(ndims))
	for i, id := range dimids {
		var length C.size_t
		if err := check("nc_inq_dimlen", C.nc_inq_dimlen(v.ncid, id, &length)); err != nil {
			return nil, err
		}
		dims[i] = int(length)
	}
	return dims, nil
}

// ReadShorts reads the whole variable into dst, which must hold exactly the
// product of the dimension lengths.
func (v *Var) ReadShorts(dst []int16) error {
	if len(dst) == 0 {
		return nil
	}
	return check("nc_get_var_short "+v.name,
		C.nc_get_var_short(v.ncid, v.varid, (*C.short)(unsafe.Pointer(&dst[0]))))
}

// ReadFloats reads the whole variable into dst.
func (v *Var) ReadFloats(dst []float32) error {
	if len(dst) == 0 {
		return nil
	}
	return check("nc_get_var_float "+v.name,
		C.nc_get_var_float(v.ncid, v.varid, (*C.float)(unsafe.Pointer(&dst[0]))))
}

// ReadDoubles reads the whole variable into dst.
func (v *Var) ReadDoubles(dst []float64) error {
	if len(dst) == 0 {
		return nil
	}
	return check("nc_get_var_double "+v.name,
		C.nc_get_var_double(v.ncid, v.varid, (*C.double)(unsafe.Pointer(&dst[0]))))
}

// AttrFloat reads a numeric attribute of the variable as float64.
func (v *Var) AttrFloat(name string) (float64, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var val C.double
	op := fmt.Sprintf("nc_get_att_double %s:%s", v.name, name)
	if err := check(op, C.nc_get_att_double(v.ncid, v.varid, cName, &val)); err != nil {
		return 0, err
	}
	return float64(val), nil
}

// AttrShort reads a numeric attribute of the variable as int16.
func (v *Var) AttrShort(name string) (int16, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var val C.short
	op := fmt.Sprintf("nc_get_att_short %s:%s", v.name, name)
	if err := check(op, C.nc_get_att_short(v.ncid, v.varid, cName, &val)); err != nil {
		return 0, err
	}
	return int16(val), nil
}

// AttrText reads a text attribute of the variable.
func (v *Var) AttrText(name string) (string, error) {
	return attrText(v.ncid, v.varid, name)
}

func attrText(ncid, varid C.int, name string) (string, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var length C.size_t
	if err := check("nc_inq_attlen "+name, C.nc_inq_attlen(ncid, varid, cName, &length)); err != nil {
		return "", err
	}
	buf := make([]byte, int(length)+1)
	if err := check("nc_get_att_text "+name, C.nc_get_att_text(ncid, varid, cName, (*C.char)(unsafe.Pointer(&buf[0])))); err != nil {
		return "", err
	}
	return string(buf[:int(length)]), nil
}
